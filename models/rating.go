package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a 1-5 star score a user gave an article. A user may rate an
// article at most once, enforced by the composite unique index.
type Rating struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_article"`
	ArticleID uuid.UUID `json:"articleId" db:"article_id" gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_article;index"`
	Value     int       `json:"rating" db:"value" gorm:"type:integer;not null;check:value >= 1 AND value <= 5"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	User    User    `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Article Article `json:"-" gorm:"foreignKey:ArticleID;references:ID"`
}
