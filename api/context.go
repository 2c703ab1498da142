package api

import (
	"context"

	"github.com/authors-haven/backend/auth"
	"github.com/authors-haven/backend/errs"
)

type keyType string

const claimsKey keyType = "claims"

// ctxWithClaims adds the authenticated user's claims to the context
func ctxWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ctxGetClaims retrieves the authenticated user's claims from the context
func ctxGetClaims(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, errs.NewUnauthorizedError("missing authentication")
	}
	return claims, nil
}
