package models

import "github.com/google/uuid"

// Tag is a lowercased label attached to articles through the article_tags
// join table. Tags are created lazily the first time a name is used.
type Tag struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
}
