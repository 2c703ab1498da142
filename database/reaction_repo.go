package database

import (
	"errors"
	"time"

	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleReactionRepo struct {
	db *gorm.DB
}

func NewArticleReactionRepo(db *gorm.DB) *ArticleReactionRepo {
	return &ArticleReactionRepo{db}
}

// Toggle flips the like state for (userID, articleID), creating the row on
// first use. Returns the resulting state. The read and write share one
// transaction so concurrent toggles serialize on the unique index.
func (r *ArticleReactionRepo) Toggle(userID, articleID uuid.UUID) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var reaction models.ArticleReaction
		err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).First(&reaction).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reaction = models.ArticleReaction{UserID: userID, ArticleID: articleID, IsLiked: true}
			liked = true
			return tx.Create(&reaction).Error
		}
		if err != nil {
			return err
		}
		now := time.Now()
		reaction.IsLiked = !reaction.IsLiked
		reaction.UpdatedAt = &now
		liked = reaction.IsLiked
		return tx.Save(&reaction).Error
	})
	return liked, err
}

// CountLikes returns the number of users currently liking the article
func (r *ArticleReactionRepo) CountLikes(articleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ArticleReaction{}).
		Where("article_id = ? AND is_liked = ?", articleID, true).
		Count(&count).Error
	return count, err
}

// Likers returns the users currently liking the article
func (r *ArticleReactionRepo) Likers(articleID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN article_reactions ON article_reactions.user_id = users.id").
		Where("article_reactions.article_id = ? AND article_reactions.is_liked = ?", articleID, true).
		Find(&users).Error
	return users, err
}

type CommentReactionRepo struct {
	db *gorm.DB
}

func NewCommentReactionRepo(db *gorm.DB) *CommentReactionRepo {
	return &CommentReactionRepo{db}
}

// Toggle flips the like state for (userID, commentID), creating the row on
// first use. Returns the resulting state.
func (r *CommentReactionRepo) Toggle(userID, commentID uuid.UUID) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var reaction models.CommentReaction
		err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&reaction).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reaction = models.CommentReaction{UserID: userID, CommentID: commentID, IsLiked: true}
			liked = true
			return tx.Create(&reaction).Error
		}
		if err != nil {
			return err
		}
		now := time.Now()
		reaction.IsLiked = !reaction.IsLiked
		reaction.UpdatedAt = &now
		liked = reaction.IsLiked
		return tx.Save(&reaction).Error
	})
	return liked, err
}

// CountLikes returns the number of users currently liking the comment
func (r *CommentReactionRepo) CountLikes(commentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.CommentReaction{}).
		Where("comment_id = ? AND is_liked = ?", commentID, true).
		Count(&count).Error
	return count, err
}
