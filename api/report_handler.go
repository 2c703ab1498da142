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

type reportHandler struct {
	responder     Responder
	logger        zerolog.Logger
	reportService *services.ReportService
}

func newReportHandler(reportService *services.ReportService) reportHandler {
	logger := log.With().Str("handlerName", "reportHandler").Logger()

	return reportHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		reportService: reportService,
	}
}

// createReport files a report against a published article
func (h reportHandler) createReport() http.HandlerFunc {
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

		var req struct {
			Reason string `json:"reason"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode report request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		report, err := h.reportService.Create(claims.UserID, slug, req.Reason)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusCreated, map[string]any{"report": report})
	}
}

// listReports returns every filed report; admin only, enforced by the route
func (h reportHandler) listReports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, err := h.reportService.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{
			"reports": reports,
			"count":   len(reports),
		})
	}
}
