package database

import (
	"errors"
	"time"

	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookmarkRepo struct {
	db *gorm.DB
}

func NewBookmarkRepo(db *gorm.DB) *BookmarkRepo {
	return &BookmarkRepo{db}
}

// SetActive records that userID bookmarked (or un-bookmarked) articleID.
// The same row is reused across cycles. Returns true when the call changed
// the state.
func (r *BookmarkRepo) SetActive(userID, articleID uuid.UUID, active bool) (bool, error) {
	var changed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var bookmark models.Bookmark
		err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).First(&bookmark).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if !active {
				return nil
			}
			bookmark = models.Bookmark{UserID: userID, ArticleID: articleID, IsActive: true}
			changed = true
			return tx.Create(&bookmark).Error
		}
		if err != nil {
			return err
		}
		if bookmark.IsActive == active {
			return nil
		}
		now := time.Now()
		bookmark.IsActive = active
		bookmark.UpdatedAt = &now
		changed = true
		return tx.Save(&bookmark).Error
	})
	return changed, err
}

// FindActiveByUser returns the user's active bookmarks with articles
// preloaded, newest first.
func (r *BookmarkRepo) FindActiveByUser(userID uuid.UUID) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.Preload("Article").Preload("Article.Tags").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}
