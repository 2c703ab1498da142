package services

import (
	"strings"
	"time"

	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CommentView is the response shape for a single comment: its latest
// revision plus like count and author projection.
type CommentView struct {
	ID         uuid.UUID      `json:"id"`
	ArticleID  uuid.UUID      `json:"articleId"`
	Body       string         `json:"body"`
	IsEdited   bool           `json:"isEdited"`
	LikesCount int64          `json:"likesCount"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  *time.Time     `json:"updatedAt,omitempty"`
	Author     models.Profile `json:"author"`
}

type CommentService struct {
	articleRepo   *database.ArticleRepo
	commentRepo   *database.CommentRepo
	reactionRepo  *database.CommentReactionRepo
	notifications *NotificationService
	logger        zerolog.Logger
}

func NewCommentService(db database.Database, notifications *NotificationService) *CommentService {
	return &CommentService{
		articleRepo:   db.ArticleRepo(),
		commentRepo:   db.CommentRepo(),
		reactionRepo:  db.CommentReactionRepo(),
		notifications: notifications,
		logger:        log.With().Str("serviceName", "commentService").Logger(),
	}
}

// Create stores a new comment with its initial revision and notifies the
// article's author. A missing article is not found; a notification failure
// never fails the comment.
func (s *CommentService) Create(userID uuid.UUID, articleSlug, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errs.NewInvalidFieldError("body", "must not be empty")
	}

	article, err := s.articleRepo.FindBySlug(articleSlug, true)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	if article == nil {
		return nil, errs.NewNotFound("article")
	}

	comment := models.Comment{
		ArticleID: article.ID,
		UserID:    userID,
	}
	if err := comment.AppendRevision(body, time.Now()); err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to encode comment revision", err)
	}
	if err := s.commentRepo.Add(&comment); err != nil {
		return nil, errs.NewDatabaseError("create", "comment", err)
	}

	if err := s.notifications.NotifyComment(userID, article); err != nil {
		s.logger.Error().Err(err).Str("slug", articleSlug).Msg("Failed to notify author of comment")
	}
	return &comment, nil
}

// Edit appends a new revision to the comment's history. The previous text is
// never overwritten. Only the comment's author may edit.
func (s *CommentService) Edit(userID, commentID uuid.UUID, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errs.NewInvalidFieldError("body", "must not be empty")
	}

	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comment", err)
	}
	if comment == nil {
		return nil, errs.NewNotFound("comment")
	}
	if comment.UserID != userID {
		return nil, errs.NewForbiddenError("comment belongs to another user")
	}

	now := time.Now()
	if err := comment.AppendRevision(body, now); err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to encode comment revision", err)
	}
	comment.IsEdited = true
	comment.UpdatedAt = &now
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, errs.NewDatabaseError("update", "comment", err)
	}
	return comment, nil
}

// Get returns a single comment's latest revision with its like count.
func (s *CommentService) Get(commentID uuid.UUID) (*CommentView, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comment", err)
	}
	if comment == nil {
		return nil, errs.NewNotFound("comment")
	}
	view, err := s.view(comment)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// History returns the comment's full edit history, oldest first.
func (s *CommentService) History(commentID uuid.UUID) ([]models.Revision, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comment", err)
	}
	if comment == nil {
		return nil, errs.NewNotFound("comment")
	}
	revisions, err := comment.History()
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to decode comment history", err)
	}
	return revisions, nil
}

// ListForArticle returns the latest revision of every live comment on an
// article.
func (s *CommentService) ListForArticle(articleSlug string) ([]CommentView, error) {
	article, err := s.articleRepo.FindBySlug(articleSlug, true)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	if article == nil {
		return nil, errs.NewNotFound("article")
	}

	comments, err := s.commentRepo.FindForArticle(article.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comments", err)
	}

	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		view, err := s.view(&comments[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// Delete soft-deletes the caller's own comment and returns the refreshed
// comment list for the parent article.
func (s *CommentService) Delete(userID, commentID uuid.UUID) ([]CommentView, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comment", err)
	}
	if comment == nil {
		return nil, errs.NewNotFound("comment")
	}
	if comment.UserID != userID {
		return nil, errs.NewForbiddenError("comment belongs to another user")
	}

	now := time.Now()
	comment.IsDeleted = true
	comment.DeletedAt = &now
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, errs.NewDatabaseError("delete", "comment", err)
	}

	remaining, err := s.commentRepo.FindForArticle(comment.ArticleID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comments", err)
	}
	views := make([]CommentView, 0, len(remaining))
	for i := range remaining {
		view, err := s.view(&remaining[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// ToggleLike flips the caller's like on a comment. Only landing on the liked
// state notifies the comment's author.
func (s *CommentService) ToggleLike(userID, commentID uuid.UUID) (bool, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return false, errs.NewDatabaseError("find", "comment", err)
	}
	if comment == nil {
		return false, errs.NewNotFound("comment")
	}

	liked, err := s.reactionRepo.Toggle(userID, commentID)
	if err != nil {
		return false, errs.NewDatabaseError("toggle", "comment reaction", err)
	}

	if liked {
		article, err := s.articleRepo.FindByID(comment.ArticleID)
		if err == nil && article != nil {
			if err := s.notifications.NotifyCommentLike(userID, comment, article); err != nil {
				s.logger.Error().Err(err).Str("commentId", commentID.String()).Msg("Failed to notify comment like")
			}
		}
	}
	return liked, nil
}

func (s *CommentService) view(comment *models.Comment) (*CommentView, error) {
	latest, ok := comment.Latest()
	if !ok {
		return nil, errs.NewInternalError("comment has no decodable revisions")
	}
	likes, err := s.reactionRepo.CountLikes(comment.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("count", "comment likes", err)
	}
	return &CommentView{
		ID:         comment.ID,
		ArticleID:  comment.ArticleID,
		Body:       latest.Body,
		IsEdited:   comment.IsEdited,
		LikesCount: likes,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
		Author:     comment.Author.Profile(),
	}, nil
}
