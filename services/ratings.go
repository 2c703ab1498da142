package services

import (
	"math"

	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
)

// RatingSummary is the per-article rating aggregate: a count per star value,
// the running sum and the mean rounded to one decimal. An unrated article
// has Average 0 and TotalCount 0; callers distinguish "unrated" by the zero
// count, so no NaN can escape.
type RatingSummary struct {
	Buckets    map[int]int `json:"ratings"`
	Sum        int         `json:"sumOfRating"`
	TotalCount int         `json:"totalCount"`
	Average    float64     `json:"averageRating"`
}

type RatingService struct {
	articleRepo *database.ArticleRepo
	ratingRepo  *database.RatingRepo
}

func NewRatingService(db database.Database) *RatingService {
	return &RatingService{
		articleRepo: db.ArticleRepo(),
		ratingRepo:  db.RatingRepo(),
	}
}

// TallyRatings folds raw rating rows into a RatingSummary.
func TallyRatings(ratings []models.Rating) RatingSummary {
	summary := RatingSummary{Buckets: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	for _, rating := range ratings {
		if rating.Value < 1 || rating.Value > 5 {
			continue
		}
		summary.Buckets[rating.Value]++
		summary.Sum += rating.Value
		summary.TotalCount++
	}
	if summary.TotalCount > 0 {
		summary.Average = math.Round(float64(summary.Sum)/float64(summary.TotalCount)*10) / 10
	}
	return summary
}

// AverageRatings loads an article's ratings and aggregates them.
func (s *RatingService) AverageRatings(articleID uuid.UUID) (RatingSummary, error) {
	article, err := s.articleRepo.FindByID(articleID)
	if err != nil {
		return RatingSummary{}, errs.NewDatabaseError("find", "article", err)
	}
	if article == nil {
		return RatingSummary{}, errs.NewNotFound("article")
	}

	ratings, err := s.ratingRepo.FindForArticle(articleID)
	if err != nil {
		return RatingSummary{}, errs.NewDatabaseError("find", "ratings", err)
	}
	return TallyRatings(ratings), nil
}

// RateArticle records a 1-5 rating. A second rating by the same user on the
// same article is a conflict, and rating a missing article is not found.
func (s *RatingService) RateArticle(userID, articleID uuid.UUID, value int) (*models.Rating, error) {
	if value < 1 || value > 5 {
		return nil, errs.NewInvalidFieldError("rating", "must be between 1 and 5")
	}

	article, err := s.articleRepo.FindByID(articleID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	if article == nil {
		return nil, errs.NewNotFound("article")
	}

	rating := models.Rating{UserID: userID, ArticleID: articleID, Value: value}
	inserted, err := s.ratingRepo.Add(&rating)
	if err != nil {
		return nil, errs.NewDatabaseError("create", "rating", err)
	}
	if !inserted {
		return nil, errs.NewAlreadyExists("rating")
	}
	return &rating, nil
}
