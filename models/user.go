package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account with its public profile
type User struct {
	ID             uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	FirstName      string     `json:"firstName" db:"first_name" gorm:"type:text;not null"`
	LastName       string     `json:"lastName" db:"last_name" gorm:"type:text;not null"`
	Username       string     `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex"`
	Email          string     `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Password       string     `json:"-" db:"password" gorm:"type:text;not null"`
	Bio            *string    `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	Image          *string    `json:"image,omitempty" db:"image" gorm:"type:text"`
	Role           string     `json:"role" db:"role" gorm:"type:text;not null;default:user"`
	ConfirmedEmail bool       `json:"confirmedEmail" db:"confirmed_email" gorm:"not null;default:false"`
	IsNotified     bool       `json:"isNotified" db:"is_notified" gorm:"not null;default:true"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`
}

// Profile is the public projection of a User embedded in article, comment
// and notification payloads.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
	Bio       *string   `json:"bio,omitempty"`
	Image     *string   `json:"image,omitempty"`
}

// Profile returns the public projection of the user.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
	}
}
