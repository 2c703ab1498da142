package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow links a follower to the user they follow. Unfollow flips IsFollowing
// on the same row, so follow/unfollow history survives as boolean flips.
type Follow struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID       uuid.UUID  `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_follow_pair"`
	FollowedID   uuid.UUID  `json:"followedId" db:"followed_id" gorm:"type:uuid;not null;uniqueIndex:idx_follow_pair;index"`
	IsFollowing  bool       `json:"isFollowing" db:"is_following" gorm:"not null;default:true"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`

	Follower User `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Followed User `json:"-" gorm:"foreignKey:FollowedID;references:ID"`
}
