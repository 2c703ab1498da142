package api

import (
	"encoding/json"
	"net/http"

	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type articleHandler struct {
	responder      Responder
	logger         zerolog.Logger
	articleService *services.ArticleService
	ratingService  *services.RatingService
	userService    *services.UserService
}

func newArticleHandler(articleService *services.ArticleService, ratingService *services.RatingService, userService *services.UserService) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		articleService: articleService,
		ratingService:  ratingService,
		userService:    userService,
	}
}

// articleRequest is the author-editable payload. Images arrive as base64
// blobs and are re-hosted on the object store.
type articleRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     string   `json:"tagList"`
	Images      [][]byte `json:"images,omitempty"`
}

func (req articleRequest) toInput() services.ArticleInput {
	return services.ArticleInput{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		TagList:     req.TagList,
		ImageData:   req.Images,
	}
}

// pagedArticles is the list response shape shared by every article listing.
type pagedArticles struct {
	Articles     []services.ArticleView `json:"articles"`
	PageMetadata services.PageMetadata  `json:"pageMetadata"`
}

// createArticle persists a new draft for the caller
func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req articleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode article request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		article, err := h.articleService.Create(r.Context(), claims.UserID, req.toInput())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusCreated, map[string]any{
			"article": services.FlattenArticle(article),
		})
	}
}

// getArticle returns a published article by slug
func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		view, err := h.articleService.GetPublished(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{"article": view})
	}
}

// listPublished returns one page of everyone's published articles
func (h articleHandler) listPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r)

		views, metadata, err := h.articleService.ListPublished(page, limit, "/articles")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, pagedArticles{Articles: views, PageMetadata: metadata})
	}
}

// listDrafts returns one page of the caller's unpublished articles
func (h articleHandler) listDrafts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		page, limit := parsePagination(r)

		views, metadata, err := h.articleService.ListOwn(claims.UserID, false, page, limit, "/articles/drafts")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, pagedArticles{Articles: views, PageMetadata: metadata})
	}
}

// listOwnPublished returns one page of the caller's published articles
func (h articleHandler) listOwnPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		page, limit := parsePagination(r)

		views, metadata, err := h.articleService.ListOwn(claims.UserID, true, page, limit, "/articles/me")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, pagedArticles{Articles: views, PageMetadata: metadata})
	}
}

// listByAuthor returns one page of a named author's published articles
func (h articleHandler) listByAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		author, err := h.userService.FindByUsername(username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		page, limit := parsePagination(r)

		views, metadata, err := h.articleService.ListByAuthor(author.ID, page, limit, "/articles/author/"+username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, pagedArticles{Articles: views, PageMetadata: metadata})
	}
}

// updateArticle applies the payload to the caller's own article
func (h articleHandler) updateArticle() http.HandlerFunc {
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

		var req articleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode article request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		article, err := h.articleService.Update(r.Context(), claims.UserID, slug, req.toInput())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{
			"article": services.FlattenArticle(article),
		})
	}
}

// deleteArticle soft-deletes the caller's own article
func (h articleHandler) deleteArticle() http.HandlerFunc {
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

		if err := h.articleService.Delete(claims.UserID, slug); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]string{
			"message": "article deleted successfully",
		})
	}
}

// publishArticle publishes the caller's draft and fans notifications out to
// followers; the fan-out tally rides along in the response
func (h articleHandler) publishArticle() http.HandlerFunc {
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

		article, fanout, err := h.articleService.Publish(claims.UserID, slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{
			"article":       services.FlattenArticle(article),
			"notifications": fanout,
		})
	}
}

// unpublishArticle reverts the caller's article to draft
func (h articleHandler) unpublishArticle() http.HandlerFunc {
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

		article, err := h.articleService.Unpublish(claims.UserID, slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{
			"article": services.FlattenArticle(article),
		})
	}
}

// toggleArticleLike flips the caller's like on a published article
func (h articleHandler) toggleArticleLike() http.HandlerFunc {
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

		liked, err := h.articleService.ToggleLike(claims.UserID, slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]bool{"liked": liked})
	}
}

// getTags lists every known tag
func (h articleHandler) getTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.articleService.FetchTags()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, tag.Name)
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{"tags": names})
	}
}

// rateArticle records the caller's one-off star rating for an article
func (h articleHandler) rateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req struct {
			ArticleID uuid.UUID `json:"articleId"`
			Rating    int       `json:"rating"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode rating request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		rating, err := h.ratingService.RateArticle(claims.UserID, req.ArticleID, req.Rating)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusCreated, map[string]any{"rating": rating})
	}
}

// getArticleRatings returns the article's star distribution and average
func (h articleHandler) getArticleRatings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleIDStr := chi.URLParam(r, "articleID")
		articleID, err := uuid.Parse(articleIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid articleID"))
			return
		}

		summary, err := h.ratingService.AverageRatings(articleID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, map[string]any{"ratings": summary})
	}
}
