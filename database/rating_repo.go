package database

import (
	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepo struct {
	db *gorm.DB
}

func NewRatingRepo(db *gorm.DB) *RatingRepo {
	return &RatingRepo{db}
}

// Add inserts a rating. The insert and the uniqueness check are one
// statement: on a (user_id, article_id) conflict nothing is written and
// false is returned, so two racing requests cannot both succeed.
func (r *RatingRepo) Add(rating *models.Rating) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "article_id"}},
		DoNothing: true,
	}).Create(rating)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindForArticle returns all ratings on an article
func (r *RatingRepo) FindForArticle(articleID uuid.UUID) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("article_id = ?", articleID).Find(&ratings).Error
	return ratings, err
}
