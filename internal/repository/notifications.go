package repository

import (
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a gorm-backed NotificationRepository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *notificationRepository) ListByUser(userID string, unreadOnly bool) ([]models.Notification, error) {
	query := r.db.Where("user_id = ?", userID).Order("created_at desc")
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	var notifications []models.Notification
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips is_read for a notification owned by the given user. A miss
// on either id or ownership surfaces as ErrNotFound.
func (r *notificationRepository) MarkRead(userID, id string) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
