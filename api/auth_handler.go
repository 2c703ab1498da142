package api

import (
	"encoding/json"
	"net/http"

	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	userService *services.UserService
}

func newAuthHandler(userService *services.UserService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		userService: userService,
	}
}

// authResponse pairs the public profile with a fresh token.
type authResponse struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

// signup creates an account and returns the profile with a token
func (h authHandler) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.SignupInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode signup request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		user, token, err := h.userService.Signup(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusCreated, authResponse{
			User:  user.Profile(),
			Token: token,
		})
	}
}

// login verifies credentials and returns the profile with a token
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		user, token, err := h.userService.Login(credentials.Email, credentials.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, authResponse{
			User:  user.Profile(),
			Token: token,
		})
	}
}
