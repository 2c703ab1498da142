package api

import (
	"encoding/json"
	"net/http"

	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder     Responder
	logger        zerolog.Logger
	userService   *services.UserService
	followService *services.FollowService
}

func newProfileHandler(userService *services.UserService, followService *services.FollowService) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		userService:   userService,
		followService: followService,
	}
}

// getProfile returns the public profile behind a username
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		profile, err := h.userService.GetProfile(username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{"profile": profile})
	}
}

// updateProfile applies the provided fields to the caller's own profile
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var update services.ProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile update request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		user, err := h.userService.UpdateProfile(claims.UserID, update)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{"profile": user.Profile()})
	}
}

// follow makes the caller follow the named user
func (h profileHandler) follow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		profile, err := h.followService.Follow(claims.UserID, username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusCreated, map[string]any{"profile": profile})
	}
}

// unfollow makes the caller stop following the named user
func (h profileHandler) unfollow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		if err := h.followService.Unfollow(claims.UserID, username); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]string{
			"message": "unfollowed successfully",
		})
	}
}

// followers lists the profiles following the caller
func (h profileHandler) followers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profiles, err := h.followService.Followers(claims.UserID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{
			"followers": profiles,
			"count":     len(profiles),
		})
	}
}

// following lists the profiles the caller follows
func (h profileHandler) following() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profiles, err := h.followService.Following(claims.UserID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{
			"following": profiles,
			"count":     len(profiles),
		})
	}
}
