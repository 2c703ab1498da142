package database

import (
	"errors"
	"strings"

	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

// ArticleFilter narrows list queries. Nil fields are ignored.
type ArticleFilter struct {
	UserID      *uuid.UUID
	IsPublished *bool
}

// SearchFilter holds the optional case-insensitive predicates composed by
// the search service. Empty fields are ignored; present fields conjoin.
type SearchFilter struct {
	Title  string
	Author string
	Tag    string
}

// Add inserts a new article into the database
func (r *ArticleRepo) Add(article *models.Article) error {
	return r.db.Create(article).Error
}

// Update updates an existing article in the database
func (r *ArticleRepo) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// ReplaceTags resets the article's tag associations to the given set.
func (r *ArticleRepo) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return r.db.Model(article).Association("Tags").Replace(tags)
}

// FindBySlug returns a non-deleted article by slug with its author and tags
// preloaded, or nil when no such article exists. When publishedOnly is set,
// drafts are excluded.
func (r *ArticleRepo) FindBySlug(slug string, publishedOnly bool) (*models.Article, error) {
	query := r.db.Preload("Author").Preload("Tags").Where("slug = ? AND is_deleted = ?", slug, false)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var article models.Article
	err := query.First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindOwned returns the article only when it belongs to the given user. A
// nil result after FindBySlug succeeded signals a foreign article.
func (r *ArticleRepo) FindOwned(slug string, userID uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Tags").
		Where("slug = ? AND user_id = ? AND is_deleted = ?", slug, userID, false).
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindByID returns a non-deleted article by ID, or nil when none exists.
func (r *ArticleRepo) FindByID(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindPage returns one page of non-deleted articles matching the filter,
// newest first, along with the total number of matching rows.
func (r *ArticleRepo) FindPage(filter ArticleFilter, limit, offset int) ([]models.Article, int64, error) {
	query := r.db.Model(&models.Article{}).Where("is_deleted = ?", false)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.IsPublished != nil {
		query = query.Where("is_published = ?", *filter.IsPublished)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := query.Preload("Author").Preload("Tags").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// Search returns published, non-deleted articles matching the conjunction of
// the present predicates. The title predicate is a plain where clause applied
// before the author and tag joins are composed in.
func (r *ArticleRepo) Search(filter SearchFilter) ([]models.Article, error) {
	query := r.db.Model(&models.Article{}).
		Where("articles.is_published = ? AND articles.is_deleted = ?", true, false)

	if filter.Title != "" {
		query = query.Where("LOWER(articles.title) LIKE ?", contains(filter.Title))
	}
	if filter.Author != "" {
		pattern := contains(filter.Author)
		query = query.Joins("JOIN users ON users.id = articles.user_id").
			Where("LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(users.username) LIKE ?",
				pattern, pattern, pattern)
	}
	if filter.Tag != "" {
		query = query.Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("LOWER(tags.name) LIKE ?", contains(filter.Tag))
	}

	var articles []models.Article
	err := query.Distinct("articles.*").
		Preload("Author").Preload("Tags").
		Order("articles.published_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
