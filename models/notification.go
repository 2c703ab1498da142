package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification carries a human-readable message from a sender to a receiver
// along with a deep link into the app.
type Notification struct {
	ID         uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	SenderID   uuid.UUID  `json:"senderId" db:"sender_id" gorm:"type:uuid;not null"`
	ReceiverID uuid.UUID  `json:"receiverId" db:"receiver_id" gorm:"type:uuid;not null;index"`
	Message    string     `json:"message" db:"message" gorm:"type:text;not null"`
	Link       string     `json:"link" db:"link" gorm:"type:text"`
	IsRead     bool       `json:"isRead" db:"is_read" gorm:"not null;default:false"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`

	Sender   User `json:"-" gorm:"foreignKey:SenderID;references:ID"`
	Receiver User `json:"-" gorm:"foreignKey:ReceiverID;references:ID"`
}
