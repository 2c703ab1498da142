package database

import (
	"strings"

	"github.com/authors-haven/backend/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all known tags from the database
func (r *TagRepo) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name").Find(&tags).Error
	return tags, err
}

// FindOrCreate resolves tag names to Tag rows, creating any that do not
// exist yet. Names are lowercased and deduplicated; the whole resolution
// runs in one transaction so concurrent creates of the same tag cannot
// produce duplicates.
func (r *TagRepo) FindOrCreate(names []string) ([]models.Tag, error) {
	seen := make(map[string]bool, len(names))
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
	}

	tags := make([]models.Tag, 0, len(normalized))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range normalized {
			var tag models.Tag
			if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			tags = append(tags, tag)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}
