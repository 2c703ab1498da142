package api

import (
	"net/http"

	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type bookmarkHandler struct {
	responder       Responder
	logger          zerolog.Logger
	bookmarkService *services.BookmarkService
}

func newBookmarkHandler(bookmarkService *services.BookmarkService) bookmarkHandler {
	logger := log.With().Str("handlerName", "bookmarkHandler").Logger()

	return bookmarkHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		bookmarkService: bookmarkService,
	}
}

// addBookmark bookmarks a published article for the caller
func (h bookmarkHandler) addBookmark() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		if err := h.bookmarkService.Add(claims.UserID, slug); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusCreated, map[string]string{
			"message": "article bookmarked",
		})
	}
}

// removeBookmark drops the caller's bookmark on an article
func (h bookmarkHandler) removeBookmark() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		if err := h.bookmarkService.Remove(claims.UserID, slug); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]string{
			"message": "bookmark removed",
		})
	}
}

// listBookmarks lists the caller's active bookmarks
func (h bookmarkHandler) listBookmarks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		views, err := h.bookmarkService.List(claims.UserID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{
			"bookmarks": views,
			"count":     len(views),
		})
	}
}
