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

// PostingService - вакансии. Владелец вакансии определяется косвенно:
// через user_id компании (один дополнительный lookup на операцию).
type PostingService interface {
	GetByID(db *gorm.DB, id string) (*models.JobPosting, error)
	List(db *gorm.DB, query *dto.ListPostingsQuery) ([]models.JobPosting, error)
	Create(db *gorm.DB, p *auth.Principal, req *dto.CreatePostingRequest) (*models.JobPosting, error)
	Update(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdatePostingRequest) (*models.JobPosting, error)
	Delete(db *gorm.DB, p *auth.Principal, id string) error
}

type PostingServiceImpl struct {
	postingRepo repositories.PostingRepository
	companyRepo repositories.CompanyRepository
	userRepo    repositories.UserRepository
}

func NewPostingService(
	postingRepo repositories.PostingRepository,
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
) PostingService {
	return &PostingServiceImpl{
		postingRepo: postingRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

func (s *PostingServiceImpl) GetByID(db *gorm.DB, id string) (*models.JobPosting, error) {
	posting, err := s.postingRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostingNotFound) {
			return nil, apperrors.NotFound("Job posting")
		}
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}

func (s *PostingServiceImpl) List(db *gorm.DB, query *dto.ListPostingsQuery) ([]models.JobPosting, error) {
	offset, limit := Pagination(query.Page, query.Limit)
	postings, err := s.postingRepo.FindWithFilter(db, repositories.PostingFilter{
		City:      query.City,
		CompanyID: query.CompanyID,
		Status:    models.PostingStatus(query.Status),
		Search:    query.Search,
		Offset:    offset,
		Limit:     limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return postings, nil
}

// Create публикует вакансию от имени компании. Вакансию в чужой компании
// может создать только администратор.
func (s *PostingServiceImpl) Create(db *gorm.DB, p *auth.Principal, req *dto.CreatePostingRequest) (*models.JobPosting, error) {
	company, err := s.companyRepo.FindByID(db, req.CompanyID)
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

	posting := &models.JobPosting{
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		CompanyID:   req.CompanyID,
	}

	if err := s.postingRepo.Create(db, posting); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}

func (s *PostingServiceImpl) Update(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdatePostingRequest) (*models.JobPosting, error) {
	posting, err := s.postingRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostingNotFound) {
			return nil, apperrors.NotFound("Job posting")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.authorizeWrite(db, p, posting); err != nil {
		return nil, err
	}

	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.City != nil {
		posting.City = *req.City
	}
	if req.SalaryFrom != nil {
		posting.SalaryFrom = req.SalaryFrom
	}
	if req.SalaryTo != nil {
		posting.SalaryTo = req.SalaryTo
	}
	if req.Status != nil {
		posting.Status = *req.Status
	}
	if req.CompanyID != nil && *req.CompanyID != posting.CompanyID {
		if !auth.CanReassignOwnership(p) {
			return nil, apperrors.NewForbiddenError("Only full admin can reassign ownership")
		}
		posting.CompanyID = *req.CompanyID
	}

	// Company перезагружается отдельно, Save не должен трогать связь
	posting.Company = nil

	if err := s.postingRepo.Update(db, posting); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}

func (s *PostingServiceImpl) Delete(db *gorm.DB, p *auth.Principal, id string) error {
	posting, err := s.postingRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostingNotFound) {
			return apperrors.NotFound("Job posting")
		}
		return apperrors.InternalError(err)
	}

	if err := s.authorizeWrite(db, p, posting); err != nil {
		return err
	}

	if err := s.postingRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PostingServiceImpl) authorizeWrite(db *gorm.DB, p *auth.Principal, posting *models.JobPosting) error {
	ownerID := ""
	if posting.Company != nil {
		ownerID = posting.Company.UserID
	} else {
		company, err := s.companyRepo.FindByID(db, posting.CompanyID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		ownerID = company.UserID
	}

	ownerRole, err := s.ownerRole(db, ownerID)
	if err != nil {
		return err
	}
	return auth.Authorize(p, ownerID, ownerRole, auth.VisibilityPeerRead, auth.ActionWrite)
}

func (s *PostingServiceImpl) ownerRole(db *gorm.DB, userID string) (models.UserRole, error) {
	owner, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Владелец удален: наружу отдаем 404, а не 403,
			// чтобы не подтверждать существование записи
			return "", apperrors.NotFound("Job posting")
		}
		return "", apperrors.InternalError(err)
	}
	return owner.Role, nil
}
