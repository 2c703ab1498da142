package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleReaction records whether a user currently likes an article. The row
// is toggled in place rather than deleted, so like/unlike history keeps a
// stable ID.
type ArticleReaction struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID  `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_article_reaction"`
	ArticleID uuid.UUID  `json:"articleId" db:"article_id" gorm:"type:uuid;not null;uniqueIndex:idx_article_reaction;index"`
	IsLiked   bool       `json:"isLiked" db:"is_liked" gorm:"not null;default:true"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`

	User    User    `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Article Article `json:"-" gorm:"foreignKey:ArticleID;references:ID"`
}

// CommentReaction is the comment counterpart of ArticleReaction.
type CommentReaction struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID  `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_comment_reaction"`
	CommentID uuid.UUID  `json:"commentId" db:"comment_id" gorm:"type:uuid;not null;uniqueIndex:idx_comment_reaction;index"`
	IsLiked   bool       `json:"isLiked" db:"is_liked" gorm:"not null;default:true"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`

	User    User    `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Comment Comment `json:"-" gorm:"foreignKey:CommentID;references:ID"`
}
