package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a free-text moderation complaint about an article. Filing one
// never removes the article; takedown is a separate moderation action.
type Report struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;index"`
	ArticleID uuid.UUID `json:"articleId" db:"article_id" gorm:"type:uuid;not null;index"`
	Reason    string    `json:"reason" db:"reason" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	User    User    `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Article Article `json:"-" gorm:"foreignKey:ArticleID;references:ID"`
}
