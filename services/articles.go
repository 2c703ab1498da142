package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// ArticleInput carries the author-editable fields of an article. TagList is
// the comma-separated tag string from the client; ImageData holds raw image
// blobs destined for the object store.
type ArticleInput struct {
	Title       string
	Description string
	Body        string
	TagList     string
	ImageData   [][]byte
}

// ArticleView is the flattened article representation returned by reads,
// enriched with live like and rating aggregates.
type ArticleView struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Body          string           `json:"body"`
	Images        []string         `json:"images,omitempty"`
	ViewsCount    int              `json:"viewsCount"`
	ReadTime      int              `json:"readTime"`
	AverageRating float64          `json:"averageRating"`
	SumOfRating   int              `json:"sumOfRating"`
	IsPublished   bool             `json:"isPublished"`
	PublishedAt   *time.Time       `json:"publishedAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	Author        *models.Profile  `json:"author,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	LikesCount    int64            `json:"likesCount"`
	Likers        []models.Profile `json:"likers,omitempty"`
}

type ArticleService struct {
	articleRepo   *database.ArticleRepo
	tagRepo       *database.TagRepo
	ratingRepo    *database.RatingRepo
	reactionRepo  *database.ArticleReactionRepo
	uploader      ImageUploader
	notifications *NotificationService
	logger        zerolog.Logger
}

func NewArticleService(db database.Database, uploader ImageUploader, notifications *NotificationService) *ArticleService {
	return &ArticleService{
		articleRepo:   db.ArticleRepo(),
		tagRepo:       db.TagRepo(),
		ratingRepo:    db.RatingRepo(),
		reactionRepo:  db.ArticleReactionRepo(),
		uploader:      uploader,
		notifications: notifications,
		logger:        log.With().Str("serviceName", "articleService").Logger(),
	}
}

// Create persists a new draft article: tags are resolved find-or-create,
// images are uploaded to the object store, the slug is derived from the
// title and the read time from the body.
func (s *ArticleService) Create(ctx context.Context, userID uuid.UUID, input ArticleInput) (*models.Article, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errs.NewInvalidFieldError("title", "must not be empty")
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, errs.NewInvalidFieldError("body", "must not be empty")
	}

	urls, err := UploadImages(ctx, s.uploader, input.ImageData)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to upload article images", err)
	}
	images, err := encodeImages(urls)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to encode image list", err)
	}

	article := models.Article{
		UserID:      userID,
		Title:       input.Title,
		Slug:        NewSlug(input.Title),
		Description: input.Description,
		Body:        input.Body,
		Images:      images,
		ReadTime:    ReadTime(input.Body),
	}
	if err := s.articleRepo.Add(&article); err != nil {
		return nil, errs.NewDatabaseError("create", "article", err)
	}

	if tags, err := s.resolveTags(input.TagList); err != nil {
		return nil, err
	} else if len(tags) > 0 {
		if err := s.articleRepo.ReplaceTags(&article, tags); err != nil {
			return nil, errs.NewDatabaseError("attach tags to", "article", err)
		}
		article.Tags = tags
	}
	return &article, nil
}

// GetPublished returns the published article behind a slug enriched with its
// like and rating aggregates.
func (s *ArticleService) GetPublished(slug string) (*ArticleView, error) {
	article, err := s.articleRepo.FindBySlug(slug, true)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	if article == nil {
		return nil, errs.NewNotFound("article")
	}
	return s.enrich(article)
}

// ListOwn returns one page of the caller's drafts or published articles.
func (s *ArticleService) ListOwn(userID uuid.UUID, published bool, page, limit int, basePath string) ([]ArticleView, PageMetadata, error) {
	return s.listPage(database.ArticleFilter{UserID: &userID, IsPublished: &published}, page, limit, basePath)
}

// ListPublished returns one page of everyone's published articles.
func (s *ArticleService) ListPublished(page, limit int, basePath string) ([]ArticleView, PageMetadata, error) {
	published := true
	return s.listPage(database.ArticleFilter{IsPublished: &published}, page, limit, basePath)
}

// ListByAuthor returns one page of a given author's published articles.
func (s *ArticleService) ListByAuthor(authorID uuid.UUID, page, limit int, basePath string) ([]ArticleView, PageMetadata, error) {
	published := true
	return s.listPage(database.ArticleFilter{UserID: &authorID, IsPublished: &published}, page, limit, basePath)
}

func (s *ArticleService) listPage(filter database.ArticleFilter, page, limit int, basePath string) ([]ArticleView, PageMetadata, error) {
	window := PaginationQueryMetadata(page, limit)
	articles, total, err := s.articleRepo.FindPage(filter, window.Limit, window.Offset)
	if err != nil {
		return nil, PageMetadata{}, errs.NewDatabaseError("find", "articles", err)
	}
	metadata, err := NewPageMetadata(page, limit, total, basePath)
	if err != nil {
		return nil, PageMetadata{}, err
	}

	views := make([]ArticleView, 0, len(articles))
	for i := range articles {
		views = append(views, FlattenArticle(&articles[i]))
	}
	return views, metadata, nil
}

// Update applies the input to the caller's own article. Ownership is checked
// by re-querying scoped to both slug and user id; the slug itself never
// changes.
func (s *ArticleService) Update(ctx context.Context, userID uuid.UUID, slug string, input ArticleInput) (*models.Article, error) {
	article, err := s.findOwned(slug, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		article.Title = input.Title
	}
	if input.Description != "" {
		article.Description = input.Description
	}
	if input.Body != "" {
		article.Body = input.Body
		article.ReadTime = ReadTime(input.Body)
	}
	if len(input.ImageData) > 0 {
		urls, err := UploadImages(ctx, s.uploader, input.ImageData)
		if err != nil {
			return nil, errs.NewInternalErrorWithCause("failed to upload article images", err)
		}
		images, err := encodeImages(urls)
		if err != nil {
			return nil, errs.NewInternalErrorWithCause("failed to encode image list", err)
		}
		article.Images = images
	}
	now := time.Now()
	article.UpdatedAt = &now

	if err := s.articleRepo.Update(article); err != nil {
		return nil, errs.NewDatabaseError("update", "article", err)
	}

	if input.TagList != "" {
		tags, err := s.resolveTags(input.TagList)
		if err != nil {
			return nil, err
		}
		if err := s.articleRepo.ReplaceTags(article, tags); err != nil {
			return nil, errs.NewDatabaseError("attach tags to", "article", err)
		}
		article.Tags = tags
	}
	return article, nil
}

// Delete soft-deletes the caller's own article. The row stays behind for
// comments, ratings and reports that reference it.
func (s *ArticleService) Delete(userID uuid.UUID, slug string) error {
	article, err := s.findOwned(slug, userID)
	if err != nil {
		return err
	}
	now := time.Now()
	article.IsDeleted = true
	article.DeletedAt = &now
	if err := s.articleRepo.Update(article); err != nil {
		return errs.NewDatabaseError("delete", "article", err)
	}
	return nil
}

// Publish marks the caller's article published, stamps PublishedAt and fans
// a notification out to the author's followers. Follower delivery failures
// do not fail the publish.
func (s *ArticleService) Publish(userID uuid.UUID, slug string) (*models.Article, FanoutResult, error) {
	article, err := s.findOwned(slug, userID)
	if err != nil {
		return nil, FanoutResult{}, err
	}
	if article.IsPublished {
		return nil, FanoutResult{}, errs.NewConflictError("article is already published")
	}

	now := time.Now()
	article.IsPublished = true
	article.PublishedAt = &now
	if err := s.articleRepo.Update(article); err != nil {
		return nil, FanoutResult{}, errs.NewDatabaseError("publish", "article", err)
	}

	fanout, err := s.notifications.NotifyPublish(article)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("Publish fan-out failed")
		fanout = FanoutResult{}
	}
	return article, fanout, nil
}

// Unpublish reverts the caller's article to draft state.
func (s *ArticleService) Unpublish(userID uuid.UUID, slug string) (*models.Article, error) {
	article, err := s.findOwned(slug, userID)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished {
		return nil, errs.NewConflictError("article is not published")
	}
	article.IsPublished = false
	article.PublishedAt = nil
	if err := s.articleRepo.Update(article); err != nil {
		return nil, errs.NewDatabaseError("unpublish", "article", err)
	}
	return article, nil
}

// ToggleLike flips the caller's like on a published article. Only landing on
// the liked state notifies the article's author.
func (s *ArticleService) ToggleLike(userID uuid.UUID, slug string) (bool, error) {
	article, err := s.articleRepo.FindBySlug(slug, true)
	if err != nil {
		return false, errs.NewDatabaseError("find", "article", err)
	}
	if article == nil {
		return false, errs.NewNotFound("article")
	}

	liked, err := s.reactionRepo.Toggle(userID, article.ID)
	if err != nil {
		return false, errs.NewDatabaseError("toggle", "article reaction", err)
	}
	if liked {
		if err := s.notifications.NotifyArticleLike(userID, article); err != nil {
			s.logger.Error().Err(err).Str("slug", slug).Msg("Failed to notify article like")
		}
	}
	return liked, nil
}

// FetchTags returns every known tag.
func (s *ArticleService) FetchTags() ([]models.Tag, error) {
	tags, err := s.tagRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "tags", err)
	}
	return tags, nil
}

// findOwned disambiguates "missing" from "forbidden" in one pass: an
// unscoped lookup first, then the owner-scoped one.
func (s *ArticleService) findOwned(slug string, userID uuid.UUID) (*models.Article, error) {
	existing, err := s.articleRepo.FindBySlug(slug, false)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("article")
	}
	owned, err := s.articleRepo.FindOwned(slug, userID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	if owned == nil {
		return nil, errs.NewForbiddenError("article belongs to another author")
	}
	return owned, nil
}

func (s *ArticleService) resolveTags(tagList string) ([]models.Tag, error) {
	if strings.TrimSpace(tagList) == "" {
		return nil, nil
	}
	tags, err := s.tagRepo.FindOrCreate(strings.Split(tagList, ","))
	if err != nil {
		return nil, errs.NewDatabaseError("resolve", "tags", err)
	}
	return tags, nil
}

// enrich attaches the live like and rating aggregates to an article view.
func (s *ArticleService) enrich(article *models.Article) (*ArticleView, error) {
	view := FlattenArticle(article)

	ratings, err := s.ratingRepo.FindForArticle(article.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "ratings", err)
	}
	summary := TallyRatings(ratings)
	view.AverageRating = summary.Average
	view.SumOfRating = summary.Sum

	likes, err := s.reactionRepo.CountLikes(article.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("count", "article likes", err)
	}
	view.LikesCount = likes

	likers, err := s.reactionRepo.Likers(article.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article likers", err)
	}
	profiles := make([]models.Profile, 0, len(likers))
	for _, liker := range likers {
		profiles = append(profiles, liker.Profile())
	}
	view.Likers = profiles

	return &view, nil
}

// FlattenArticle maps an article row (with preloaded author and tags) to the
// flattened response shape. Aggregates default to zero; enrich fills them.
func FlattenArticle(article *models.Article) ArticleView {
	view := ArticleView{
		ID:          article.ID,
		Title:       article.Title,
		Slug:        article.Slug,
		Description: article.Description,
		Body:        article.Body,
		Images:      decodeImages(article.Images),
		ViewsCount:  article.ViewsCount,
		ReadTime:    article.ReadTime,
		IsPublished: article.IsPublished,
		PublishedAt: article.PublishedAt,
		CreatedAt:   article.CreatedAt,
	}
	if article.Author.ID != uuid.Nil {
		profile := article.Author.Profile()
		view.Author = &profile
	}
	for _, tag := range article.Tags {
		view.Tags = append(view.Tags, tag.Name)
	}
	return view
}

func encodeImages(urls []string) (datatypes.JSON, error) {
	if len(urls) == 0 {
		return nil, nil
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(encoded), nil
}

func decodeImages(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		return nil
	}
	return urls
}
