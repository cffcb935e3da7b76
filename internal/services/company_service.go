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

// CompanyService - компании работодателей.
// Видимость peer-read: читает любой аутентифицированный, пишет владелец.
type CompanyService interface {
	GetByID(db *gorm.DB, id string) (*models.EmployerCompany, error)
	List(db *gorm.DB, page, limit int) ([]models.EmployerCompany, error)
	ListMine(db *gorm.DB, p *auth.Principal, page, limit int) ([]models.EmployerCompany, error)
	Create(db *gorm.DB, p *auth.Principal, req *dto.CreateCompanyRequest) (*models.EmployerCompany, error)
	Update(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateCompanyRequest) (*models.EmployerCompany, error)
	Delete(db *gorm.DB, p *auth.Principal, id string) error
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
	userRepo    repositories.UserRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository, userRepo repositories.UserRepository) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo, userRepo: userRepo}
}

func (s *CompanyServiceImpl) GetByID(db *gorm.DB, id string) (*models.EmployerCompany, error) {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NotFound("Company")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) List(db *gorm.DB, page, limit int) ([]models.EmployerCompany, error) {
	offset, limit := Pagination(page, limit)
	companies, err := s.companyRepo.FindAll(db, offset, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}

func (s *CompanyServiceImpl) ListMine(db *gorm.DB, p *auth.Principal, page, limit int) ([]models.EmployerCompany, error) {
	offset, limit := Pagination(page, limit)
	companies, err := s.companyRepo.FindByUserID(db, p.ID, offset, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}

func (s *CompanyServiceImpl) Create(db *gorm.DB, p *auth.Principal, req *dto.CreateCompanyRequest) (*models.EmployerCompany, error) {
	company := &models.EmployerCompany{
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Website:     req.Website,
		UserID:      p.ID,
	}

	if err := s.companyRepo.Create(db, company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) Update(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateCompanyRequest) (*models.EmployerCompany, error) {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NotFound("Company")
		}
		return nil, apperrors.InternalError(err)
	}

	ownerRole, err := s.ownerRole(db, company.UserID)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(p, company.UserID, ownerRole, auth.VisibilityPeerRead, auth.ActionWrite); err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.City != nil {
		company.City = *req.City
	}
	if req.Website != nil {
		company.Website = req.Website
	}
	if req.UserID != nil && *req.UserID != company.UserID {
		if !auth.CanReassignOwnership(p) {
			return nil, apperrors.NewForbiddenError("Only full admin can reassign ownership")
		}
		company.UserID = *req.UserID
	}

	if err := s.companyRepo.Update(db, company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) Delete(db *gorm.DB, p *auth.Principal, id string) error {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.NotFound("Company")
		}
		return apperrors.InternalError(err)
	}

	ownerRole, err := s.ownerRole(db, company.UserID)
	if err != nil {
		return err
	}
	if err := auth.Authorize(p, company.UserID, ownerRole, auth.VisibilityPeerRead, auth.ActionWrite); err != nil {
		return err
	}

	if err := s.companyRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ownerRole - роль владельца нужна политике для асимметричной
// защиты админских записей
func (s *CompanyServiceImpl) ownerRole(db *gorm.DB, userID string) (models.UserRole, error) {
	owner, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Владелец удален: наружу отдаем 404, а не 403,
			// чтобы не подтверждать существование записи
			return "", apperrors.NotFound("Company")
		}
		return "", apperrors.InternalError(err)
	}
	return owner.Role, nil
}
