package database

import (
	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) *ReportRepo {
	return &ReportRepo{db}
}

// Add inserts a new report into the database
func (r *ReportRepo) Add(report *models.Report) error {
	return r.db.Create(report).Error
}

// FindAll returns all reports, newest first
func (r *ReportRepo) FindAll() ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Order("created_at DESC").Find(&reports).Error
	return reports, err
}

// FindForArticle returns all reports filed against an article
func (r *ReportRepo) FindForArticle(articleID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("article_id = ?", articleID).Order("created_at DESC").Find(&reports).Error
	return reports, err
}
