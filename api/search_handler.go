package api

import (
	"net/http"

	"github.com/authors-haven/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type searchHandler struct {
	responder     Responder
	logger        zerolog.Logger
	searchService *services.SearchService
}

func newSearchHandler(searchService *services.SearchService) searchHandler {
	logger := log.With().Str("handlerName", "searchHandler").Logger()

	return searchHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		searchService: searchService,
	}
}

// search finds published articles by title, author and tag; supplied
// criteria are conjoined
func (h searchHandler) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		result, err := h.searchService.Search(query.Get("title"), query.Get("author"), query.Get("tag"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, result)
	}
}
