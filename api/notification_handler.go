package api

import (
	"net/http"

	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type notificationHandler struct {
	responder           Responder
	logger              zerolog.Logger
	notificationService *services.NotificationService
}

func newNotificationHandler(notificationService *services.NotificationService) notificationHandler {
	logger := log.With().Str("handlerName", "notificationHandler").Logger()

	return notificationHandler{
		responder:           NewResponder(logger),
		logger:              logger,
		notificationService: notificationService,
	}
}

// listNotifications returns one page of the caller's notifications
func (h notificationHandler) listNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		page, limit := parsePagination(r)

		notifications, metadata, err := h.notificationService.List(claims.UserID, page, limit, "/notifications")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{
			"notifications": notifications,
			"pageMetadata":  metadata,
		})
	}
}

// markNotificationRead marks one of the caller's notifications as read
func (h notificationHandler) markNotificationRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		notificationID, err := uuid.Parse(chi.URLParam(r, "notificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid notificationID"))
			return
		}

		notification, err := h.notificationService.MarkRead(claims.UserID, notificationID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{"notification": notification})
	}
}
