package services

import (
	"testing"

	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyRatingsFullSpread(t *testing.T) {
	ratings := []models.Rating{
		{Value: 1}, {Value: 2}, {Value: 3}, {Value: 4}, {Value: 5},
	}

	summary := TallyRatings(ratings)

	assert.Equal(t, 3.0, summary.Average)
	assert.Equal(t, 15, summary.Sum)
	assert.Equal(t, 5, summary.TotalCount)
	for star := 1; star <= 5; star++ {
		assert.Equal(t, 1, summary.Buckets[star], "bucket %d", star)
	}
}

func TestTallyRatingsEmptyInput(t *testing.T) {
	summary := TallyRatings(nil)

	assert.Equal(t, 0.0, summary.Average)
	assert.Equal(t, 0, summary.TotalCount)
	assert.Equal(t, 0, summary.Sum)
}

func TestTallyRatingsRoundsToOneDecimal(t *testing.T) {
	summary := TallyRatings([]models.Rating{{Value: 5}, {Value: 4}, {Value: 4}})

	// 13/3 = 4.333...
	assert.Equal(t, 4.3, summary.Average)
}

func TestRateArticle(t *testing.T) {
	db := newTestDB(t)
	service := NewRatingService(db)

	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	article := seedArticle(t, db, author, "Rated Article", true)

	rating, err := service.RateArticle(reader.ID, article.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Value)

	summary, err := service.AverageRatings(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, summary.Average)
	assert.Equal(t, 1, summary.TotalCount)
}

func TestRateArticleTwiceIsConflict(t *testing.T) {
	db := newTestDB(t)
	service := NewRatingService(db)

	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	article := seedArticle(t, db, author, "Rated Article", true)

	_, err := service.RateArticle(reader.ID, article.ID, 4)
	require.NoError(t, err)

	_, err = service.RateArticle(reader.ID, article.ID, 2)
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err), "expected conflict, got %v", err)
}

func TestRateArticleValidation(t *testing.T) {
	db := newTestDB(t)
	service := NewRatingService(db)

	author := seedUser(t, db, "author")
	article := seedArticle(t, db, author, "Rated Article", true)

	_, err := service.RateArticle(author.ID, article.ID, 0)
	assert.True(t, errs.IsBadRequest(err))

	_, err = service.RateArticle(author.ID, article.ID, 6)
	assert.True(t, errs.IsBadRequest(err))

	_, err = service.RateArticle(author.ID, uuid.New(), 3)
	assert.True(t, errs.IsNotFound(err))
}
