package database

import (
	"errors"

	"github.com/authors-haven/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{db}
}

// Add inserts a new notification into the database
func (r *NotificationRepo) Add(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// Update updates an existing notification in the database
func (r *NotificationRepo) Update(notification *models.Notification) error {
	return r.db.Save(notification).Error
}

// FindByID returns a notification by ID, or nil when no such row exists
func (r *NotificationRepo) FindByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// FindForReceiver returns one page of a user's notifications, newest first,
// along with the total count.
func (r *NotificationRepo) FindForReceiver(receiverID uuid.UUID, limit, offset int) ([]models.Notification, int64, error) {
	query := r.db.Model(&models.Notification{}).Where("receiver_id = ?", receiverID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// CountForReceiver returns the total number of notifications a user has.
func (r *NotificationRepo) CountForReceiver(receiverID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("receiver_id = ?", receiverID).Count(&count).Error
	return count, err
}
