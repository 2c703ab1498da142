package database

import (
	"errors"
	"time"

	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowRepo struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) *FollowRepo {
	return &FollowRepo{db}
}

// SetFollowing records that userID follows (or no longer follows)
// followedID. The same row is reused across follow/unfollow cycles.
// Returns true when the call changed the state.
func (r *FollowRepo) SetFollowing(userID, followedID uuid.UUID, following bool) (bool, error) {
	var changed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var follow models.Follow
		err := tx.Where("user_id = ? AND followed_id = ?", userID, followedID).First(&follow).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if !following {
				return nil // nothing to unfollow
			}
			follow = models.Follow{UserID: userID, FollowedID: followedID, IsFollowing: true}
			changed = true
			return tx.Create(&follow).Error
		}
		if err != nil {
			return err
		}
		if follow.IsFollowing == following {
			return nil
		}
		now := time.Now()
		follow.IsFollowing = following
		follow.UpdatedAt = &now
		changed = true
		return tx.Save(&follow).Error
	})
	return changed, err
}

// IsFollowing reports whether userID currently follows followedID
func (r *FollowRepo) IsFollowing(userID, followedID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("user_id = ? AND followed_id = ? AND is_following = ?", userID, followedID, true).
		Count(&count).Error
	return count > 0, err
}

// Followers returns the users currently following the given user
func (r *FollowRepo) Followers(userID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN follows ON follows.user_id = users.id").
		Where("follows.followed_id = ? AND follows.is_following = ?", userID, true).
		Find(&users).Error
	return users, err
}

// Following returns the users the given user currently follows
func (r *FollowRepo) Following(userID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.user_id = ? AND follows.is_following = ?", userID, true).
		Find(&users).Error
	return users, err
}
