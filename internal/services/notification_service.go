package services

import (
	"errors"
	"fmt"
	"log/slog"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/email"
	"jobport_backend/internal/logger"
	"jobport_backend/internal/models"
	"jobport_backend/internal/repositories"
	"jobport_backend/internal/services/dto"
	"jobport_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// NotificationService - внутрисистемные уведомления.
// Видимость owner-only: пользователь работает только со своими.
type NotificationService interface {
	List(db *gorm.DB, p *auth.Principal, query *dto.ListNotificationsQuery) ([]models.Notification, error)
	Create(db *gorm.DB, req *dto.CreateNotificationRequest) (*models.Notification, error)
	MarkRead(db *gorm.DB, p *auth.Principal, id string) (*models.Notification, error)
	MarkAllRead(db *gorm.DB, p *auth.Principal) error
	Delete(db *gorm.DB, p *auth.Principal, id string) error

	// Notify создает уведомление от имени системы
	Notify(db *gorm.DB, userID, title, body string)
	// NotifyApplicationStatus - уведомление плюс письмо о смене статуса отклика
	NotifyApplicationStatus(db *gorm.DB, userID, status string)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

func (s *NotificationServiceImpl) List(db *gorm.DB, p *auth.Principal, query *dto.ListNotificationsQuery) ([]models.Notification, error) {
	offset, limit := Pagination(query.Page, query.Limit)
	notifications, err := s.notificationRepo.FindByUserID(db, p.ID, query.OnlyUnread, offset, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

// Create - административная операция, маршрут закрыт ролями
func (s *NotificationServiceImpl) Create(db *gorm.DB, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	notification := &models.Notification{
		Title:  req.Title,
		Body:   req.Body,
		UserID: req.UserID,
	}
	if err := s.notificationRepo.Create(db, notification); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}

func (s *NotificationServiceImpl) MarkRead(db *gorm.DB, p *auth.Principal, id string) (*models.Notification, error) {
	notification, err := s.findOwned(db, p, id)
	if err != nil {
		return nil, err
	}

	notification.IsRead = true
	if err := s.notificationRepo.Update(db, notification); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}

func (s *NotificationServiceImpl) MarkAllRead(db *gorm.DB, p *auth.Principal) error {
	if err := s.notificationRepo.MarkAllRead(db, p.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) Delete(db *gorm.DB, p *auth.Principal, id string) error {
	if _, err := s.findOwned(db, p, id); err != nil {
		return err
	}
	if err := s.notificationRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Notify не возвращает ошибку: провал уведомления не должен
// ломать основную операцию, достаточно записи в лог.
func (s *NotificationServiceImpl) Notify(db *gorm.DB, userID, title, body string) {
	notification := &models.Notification{
		Title:  title,
		Body:   body,
		UserID: userID,
	}
	if err := s.notificationRepo.Create(db, notification); err != nil {
		logger.Error("failed to create notification",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
}

func (s *NotificationServiceImpl) NotifyApplicationStatus(db *gorm.DB, userID, status string) {
	body := fmt.Sprintf("Your job application status changed to %q", status)
	s.Notify(db, userID, "Application status updated", body)

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		logger.Error("failed to load user for status email",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return
	}
	if err := s.emailProvider.Send(user.Email, "Application status updated", body); err != nil {
		logger.Error("failed to send status email",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
}

func (s *NotificationServiceImpl) findOwned(db *gorm.DB, p *auth.Principal, id string) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.NotFound("Notification")
		}
		return nil, apperrors.InternalError(err)
	}

	ownerRole, err := s.ownerRole(db, notification.UserID)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(p, notification.UserID, ownerRole, auth.VisibilityOwnerOnly, auth.ActionWrite); err != nil {
		return nil, err
	}
	return notification, nil
}

// ownerRole - роль владельца нужна политике для асимметричной защиты
// админских записей. Уведомления создаются и для администраторов,
// поэтому роль здесь не менее важна, чем у остальных ресурсов.
func (s *NotificationServiceImpl) ownerRole(db *gorm.DB, userID string) (models.UserRole, error) {
	owner, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Владелец удален: наружу отдаем 404, а не 403,
			// чтобы не подтверждать существование записи
			return "", apperrors.NotFound("Notification")
		}
		return "", apperrors.InternalError(err)
	}
	return owner.Role, nil
}
