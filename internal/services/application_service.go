package services

import (
	"errors"
	"fmt"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/models"
	"jobport_backend/internal/repositories"
	"jobport_backend/internal/services/dto"
	"jobport_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ApplicationService - отклики на вакансии и сохраненные вакансии.
// Отклик создает соискатель со своим резюме; читают и меняют статус
// владелец отклика, работодатель-владелец вакансии и администраторы.
type ApplicationService interface {
	GetByID(db *gorm.DB, p *auth.Principal, id string) (*models.JobApplication, error)
	List(db *gorm.DB, p *auth.Principal, page, limit int) ([]models.JobApplication, error)
	Create(db *gorm.DB, p *auth.Principal, req *dto.CreateApplicationRequest) (*models.JobApplication, error)
	UpdateStatus(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error)
	Delete(db *gorm.DB, p *auth.Principal, id string) error

	SaveJob(db *gorm.DB, p *auth.Principal, req *dto.SaveJobRequest) (*models.SavedJob, error)
	ListSaved(db *gorm.DB, p *auth.Principal, page, limit int) ([]models.SavedJob, error)
	UnsaveJob(db *gorm.DB, p *auth.Principal, id string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	postingRepo     repositories.PostingRepository
	resumeRepo      repositories.ResumeRepository
	userRepo        repositories.UserRepository
	notifications   NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	postingRepo repositories.PostingRepository,
	resumeRepo repositories.ResumeRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		postingRepo:     postingRepo,
		resumeRepo:      resumeRepo,
		userRepo:        userRepo,
		notifications:   notifications,
	}
}

func (s *ApplicationServiceImpl) GetByID(db *gorm.DB, p *auth.Principal, id string) (*models.JobApplication, error) {
	application, err := s.findApplication(db, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeAccess(db, p, application); err != nil {
		return nil, err
	}
	return application, nil
}

// List: соискатель видит свои отклики, работодатель - отклики на вакансии
// своих компаний, администраторы - весь поток.
func (s *ApplicationServiceImpl) List(db *gorm.DB, p *auth.Principal, page, limit int) ([]models.JobApplication, error) {
	offset, limit := Pagination(page, limit)

	var (
		applications []models.JobApplication
		err          error
	)
	switch {
	case p.Role == models.UserRoleEmployer:
		applications, err = s.applicationRepo.FindForEmployer(db, p.ID, offset, limit)
	case p.Role.IsAdministrative():
		applications, err = s.applicationRepo.FindAll(db, offset, limit)
	default:
		applications, err = s.applicationRepo.FindByUserID(db, p.ID, offset, limit)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// Create - отклик только со своим резюме и только на активную вакансию.
// Повторный отклик на ту же вакансию отклоняется.
func (s *ApplicationServiceImpl) Create(db *gorm.DB, p *auth.Principal, req *dto.CreateApplicationRequest) (*models.JobApplication, error) {
	resume, err := s.resumeRepo.FindByID(db, req.ResumeID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.NotFound("Resume")
		}
		return nil, apperrors.InternalError(err)
	}
	if resume.UserID != p.ID && !p.Role.IsAdministrative() {
		return nil, apperrors.NewForbiddenError("Cannot apply with someone else's resume")
	}

	posting, err := s.postingRepo.FindByID(db, req.JobPostingID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostingNotFound) {
			return nil, apperrors.NotFound("Job posting")
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.Status != models.PostingStatusActive {
		return nil, apperrors.NewBadRequestError("Job posting is not accepting applications")
	}

	if _, err := s.applicationRepo.FindByUserAndPosting(db, p.ID, req.JobPostingID); err == nil {
		return nil, apperrors.Conflict("Application for this job posting already exists")
	} else if !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	application := &models.JobApplication{
		CoverLetter:  req.CoverLetter,
		UserID:       p.ID,
		ResumeID:     req.ResumeID,
		JobPostingID: req.JobPostingID,
	}
	if err := s.applicationRepo.Create(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Работодатель узнает о новом отклике
	if posting.Company != nil {
		s.notifications.Notify(db, posting.Company.UserID,
			"New application",
			fmt.Sprintf("New application received for %q", posting.Title))
	}

	return application, nil
}

// UpdateStatus меняет статус отклика. Право на это имеет
// работодатель-владелец вакансии или администратор, но не автор отклика.
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error) {
	application, err := s.findApplication(db, id)
	if err != nil {
		return nil, err
	}

	if !p.Role.IsAdministrative() {
		employerID, err := s.postingOwner(db, application)
		if err != nil {
			return nil, err
		}
		if employerID != p.ID {
			return nil, apperrors.ErrForbidden
		}
	}

	application.Status = req.Status
	application.Resume = nil
	application.JobPosting = nil
	if err := s.applicationRepo.Update(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Соискатель получает уведомление и письмо о смене статуса
	s.notifications.NotifyApplicationStatus(db, application.UserID, string(req.Status))

	return application, nil
}

func (s *ApplicationServiceImpl) Delete(db *gorm.DB, p *auth.Principal, id string) error {
	application, err := s.findApplication(db, id)
	if err != nil {
		return err
	}

	// Отозвать отклик может автор или администратор
	if application.UserID != p.ID && !p.Role.IsAdministrative() {
		return apperrors.ErrForbidden
	}

	if err := s.applicationRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) SaveJob(db *gorm.DB, p *auth.Principal, req *dto.SaveJobRequest) (*models.SavedJob, error) {
	if _, err := s.postingRepo.FindByID(db, req.JobPostingID); err != nil {
		if errors.Is(err, repositories.ErrPostingNotFound) {
			return nil, apperrors.NotFound("Job posting")
		}
		return nil, apperrors.InternalError(err)
	}

	saved := &models.SavedJob{
		UserID:       p.ID,
		JobPostingID: req.JobPostingID,
	}
	if err := s.applicationRepo.CreateSaved(db, saved); err != nil {
		if errors.Is(err, repositories.ErrSavedJobExists) {
			return nil, apperrors.Conflict("Job already saved")
		}
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

func (s *ApplicationServiceImpl) ListSaved(db *gorm.DB, p *auth.Principal, page, limit int) ([]models.SavedJob, error) {
	offset, limit := Pagination(page, limit)
	saved, err := s.applicationRepo.FindSavedByUserID(db, p.ID, offset, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

func (s *ApplicationServiceImpl) UnsaveJob(db *gorm.DB, p *auth.Principal, id string) error {
	saved, err := s.applicationRepo.FindSavedByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSavedJobNotFound) {
			return apperrors.NotFound("Saved job")
		}
		return apperrors.InternalError(err)
	}

	if saved.UserID != p.ID && !p.Role.IsAdministrative() {
		return apperrors.ErrForbidden
	}

	if err := s.applicationRepo.DeleteSaved(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) findApplication(db *gorm.DB, id string) (*models.JobApplication, error) {
	application, err := s.applicationRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NotFound("Application")
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

// authorizeAccess: автор отклика, работодатель-владелец вакансии
// или администратор
func (s *ApplicationServiceImpl) authorizeAccess(db *gorm.DB, p *auth.Principal, application *models.JobApplication) error {
	if p.Role.IsAdministrative() || application.UserID == p.ID {
		return nil
	}
	if p.Role == models.UserRoleEmployer {
		employerID, err := s.postingOwner(db, application)
		if err != nil {
			return err
		}
		if employerID == p.ID {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

func (s *ApplicationServiceImpl) postingOwner(db *gorm.DB, application *models.JobApplication) (string, error) {
	posting := application.JobPosting
	if posting == nil {
		loaded, err := s.postingRepo.FindByID(db, application.JobPostingID)
		if err != nil {
			return "", apperrors.InternalError(err)
		}
		posting = loaded
	}
	if posting.Company != nil {
		return posting.Company.UserID, nil
	}
	return "", apperrors.InternalError(errors.New("posting company not loaded"))
}
