package services

import (
	"errors"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/models"
	"jobport_backend/internal/repositories"
	"jobport_backend/internal/services/dto"
	"jobport_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetMe(db *gorm.DB, p *auth.Principal) (*models.User, error)
	GetByID(db *gorm.DB, p *auth.Principal, id string) (*models.User, error)
	List(db *gorm.DB, query *dto.ListUsersQuery) ([]models.User, error)
	Update(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateUserRequest) (*models.User, error)
	UpdateStatus(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateUserStatusRequest) (*models.User, error)
	Delete(db *gorm.DB, p *auth.Principal, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetMe - профиль текущего пользователя по принципалу из токена.
// Свежая запись читается из базы на каждый вызов.
func (s *UserServiceImpl) GetMe(db *gorm.DB, p *auth.Principal) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, p.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Токен подлинный, но пользователь уже удален
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, p *auth.Principal, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := auth.Authorize(p, user.ID, user.Role, auth.VisibilityOwnerOnly, auth.ActionRead); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) List(db *gorm.DB, query *dto.ListUsersQuery) ([]models.User, error) {
	offset, limit := Pagination(query.Page, query.Limit)
	users, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Role:          models.UserRole(query.Role),
		AccountStatus: models.AccountStatus(query.Status),
		Search:        query.Search,
		Offset:        offset,
		Limit:         limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *UserServiceImpl) Update(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := auth.Authorize(p, user.ID, user.Role, auth.VisibilityOwnerOnly, auth.ActionWrite); err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateStatus меняет статус аккаунта. Маршрут открыт только админам,
// но асимметричная защита admin-записей проверяется и здесь.
func (s *UserServiceImpl) UpdateStatus(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateUserStatusRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := auth.Authorize(p, user.ID, user.Role, auth.VisibilityOwnerOnly, auth.ActionWrite); err != nil {
		return nil, err
	}

	user.AccountStatus = req.AccountStatus
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(db *gorm.DB, p *auth.Principal, id string) error {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := auth.Authorize(p, user.ID, user.Role, auth.VisibilityOwnerOnly, auth.ActionWrite); err != nil {
		return err
	}

	if err := s.userRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
