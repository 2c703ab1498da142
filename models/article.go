package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Article represents an authored piece of content with its publish state
type Article struct {
	ID          uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID      uuid.UUID      `json:"userId" db:"user_id" gorm:"type:uuid;not null;index"`
	Title       string         `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string         `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string         `json:"description" db:"description" gorm:"type:text"`
	Body        string         `json:"body" db:"body" gorm:"type:text;not null"`
	Images      datatypes.JSON `json:"images,omitempty" db:"images" gorm:"type:jsonb"`
	ReadTime    int            `json:"readTime" db:"read_time" gorm:"type:integer;not null;default:1"`
	ViewsCount  int            `json:"viewsCount" db:"views_count" gorm:"type:integer;not null;default:0"`
	IsPublished bool           `json:"isPublished" db:"is_published" gorm:"not null;default:false;index"`
	PublishedAt *time.Time     `json:"publishedAt,omitempty" db:"published_at" gorm:"type:timestamp"`
	IsDeleted   bool           `json:"-" db:"is_deleted" gorm:"not null;default:false;index"`
	DeletedAt   *time.Time     `json:"-" db:"deleted_at" gorm:"type:timestamp"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`

	Author User  `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Tags   []Tag `json:"tags,omitempty" gorm:"many2many:article_tags;constraint:OnDelete:CASCADE"`
}
