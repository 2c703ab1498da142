package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Revision is one entry in a comment's append-only edit history.
type Revision struct {
	Timestamp time.Time `json:"timestamp"`
	Body      string    `json:"body"`
}

// Comment belongs to one Article and one User. Its body is an ordered list
// of revisions; the current text is always the last revision.
type Comment struct {
	ID        uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ArticleID uuid.UUID      `json:"articleId" db:"article_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID      `json:"userId" db:"user_id" gorm:"type:uuid;not null;index"`
	Revisions datatypes.JSON `json:"-" db:"revisions" gorm:"type:jsonb;not null"`
	IsEdited  bool           `json:"isEdited" db:"is_edited" gorm:"not null;default:false"`
	IsDeleted bool           `json:"-" db:"is_deleted" gorm:"not null;default:false;index"`
	DeletedAt *time.Time     `json:"-" db:"deleted_at" gorm:"type:timestamp"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt *time.Time     `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`

	Article Article `json:"-" gorm:"foreignKey:ArticleID;references:ID"`
	Author  User    `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

// History decodes the full revision list, oldest first.
func (c Comment) History() ([]Revision, error) {
	if len(c.Revisions) == 0 {
		return nil, nil
	}
	var revisions []Revision
	if err := json.Unmarshal(c.Revisions, &revisions); err != nil {
		return nil, err
	}
	return revisions, nil
}

// Latest returns the most recent revision, or false when the comment has no
// decodable revisions.
func (c Comment) Latest() (Revision, bool) {
	revisions, err := c.History()
	if err != nil || len(revisions) == 0 {
		return Revision{}, false
	}
	return revisions[len(revisions)-1], true
}

// AppendRevision adds a new revision to the history and re-encodes it.
// The caller is responsible for flipping IsEdited.
func (c *Comment) AppendRevision(body string, at time.Time) error {
	revisions, err := c.History()
	if err != nil {
		return err
	}
	revisions = append(revisions, Revision{Timestamp: at, Body: body})
	encoded, err := json.Marshal(revisions)
	if err != nil {
		return err
	}
	c.Revisions = datatypes.JSON(encoded)
	return nil
}
