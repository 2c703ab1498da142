package services

import (
	"strings"

	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
)

type ReportService struct {
	articleRepo *database.ArticleRepo
	reportRepo  *database.ReportRepo
}

func NewReportService(db database.Database) *ReportService {
	return &ReportService{
		articleRepo: db.ArticleRepo(),
		reportRepo:  db.ReportRepo(),
	}
}

// Create files a moderation complaint against a published article. Filing a
// report never removes the article.
func (s *ReportService) Create(userID uuid.UUID, slug, reason string) (*models.Report, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errs.NewInvalidFieldError("reason", "must not be empty")
	}

	article, err := s.articleRepo.FindBySlug(slug, true)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	if article == nil {
		return nil, errs.NewNotFound("article")
	}

	report := models.Report{UserID: userID, ArticleID: article.ID, Reason: reason}
	if err := s.reportRepo.Add(&report); err != nil {
		return nil, errs.NewDatabaseError("create", "report", err)
	}
	return &report, nil
}

// List returns all reports, newest first. Admin only; the handler enforces
// the role.
func (s *ReportService) List() ([]models.Report, error) {
	reports, err := s.reportRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "reports", err)
	}
	return reports, nil
}
