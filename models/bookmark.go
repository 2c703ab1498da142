package models

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark marks an article as saved by a user. Removal flips IsActive on
// the same row, matching the toggle semantics of Follow.
type Bookmark struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID  `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_pair"`
	ArticleID uuid.UUID  `json:"articleId" db:"article_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_pair;index"`
	IsActive  bool       `json:"isActive" db:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`

	User    User    `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Article Article `json:"-" gorm:"foreignKey:ArticleID;references:ID"`
}
