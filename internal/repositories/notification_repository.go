package repositories

import (
	"errors"

	"jobport_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Notification, error)
	FindByUserID(db *gorm.DB, userID string, onlyUnread bool, offset, limit int) ([]models.Notification, error)
	Create(db *gorm.DB, notification *models.Notification) error
	Update(db *gorm.DB, notification *models.Notification) error
	MarkAllRead(db *gorm.DB, userID string) error
	Delete(db *gorm.DB, id string) error
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Notification, error) {
	var notification models.Notification
	err := db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindByUserID(db *gorm.DB, userID string, onlyUnread bool, offset, limit int) ([]models.Notification, error) {
	query := db.Where("user_id = ?", userID)
	if onlyUnread {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) Update(db *gorm.DB, notification *models.Notification) error {
	return db.Save(notification).Error
}

func (r *NotificationRepositoryImpl) MarkAllRead(db *gorm.DB, userID string) error {
	return db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *NotificationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Notification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
