package database

import (
	"errors"

	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Update updates an existing comment in the database
func (r *CommentRepo) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// FindByID returns a non-deleted comment by ID with its author preloaded,
// or nil when no such comment exists.
func (r *CommentRepo) FindByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Author").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindForArticle returns all non-deleted comments on an article, oldest
// first, with authors preloaded.
func (r *CommentRepo) FindForArticle(articleID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("article_id = ? AND is_deleted = ?", articleID, false).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
