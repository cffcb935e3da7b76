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

// ResumeService - резюме соискателей и их дочерние сущности.
// Видимость employer-read: соискатель видит только свои резюме,
// работодатель читает все, пишет только владелец.
type ResumeService interface {
	GetByID(db *gorm.DB, p *auth.Principal, id string) (*models.JobSeekerResume, error)
	List(db *gorm.DB, p *auth.Principal, page, limit int) ([]models.JobSeekerResume, error)
	Create(db *gorm.DB, p *auth.Principal, req *dto.CreateResumeRequest) (*models.JobSeekerResume, error)
	Update(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateResumeRequest) (*models.JobSeekerResume, error)
	Delete(db *gorm.DB, p *auth.Principal, id string) error

	AddSkill(db *gorm.DB, p *auth.Principal, resumeID string, req *dto.CreateSkillRequest) (*models.JobSeekerSkill, error)
	UpdateSkill(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateSkillRequest) (*models.JobSeekerSkill, error)
	DeleteSkill(db *gorm.DB, p *auth.Principal, id string) error

	AddEducation(db *gorm.DB, p *auth.Principal, resumeID string, req *dto.CreateEducationRequest) (*models.JobSeekerEducation, error)
	UpdateEducation(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateEducationRequest) (*models.JobSeekerEducation, error)
	DeleteEducation(db *gorm.DB, p *auth.Principal, id string) error

	AddWorkExperience(db *gorm.DB, p *auth.Principal, resumeID string, req *dto.CreateWorkExperienceRequest) (*models.JobSeekerWorkExperience, error)
	UpdateWorkExperience(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateWorkExperienceRequest) (*models.JobSeekerWorkExperience, error)
	DeleteWorkExperience(db *gorm.DB, p *auth.Principal, id string) error
}

type ResumeServiceImpl struct {
	resumeRepo repositories.ResumeRepository
	userRepo   repositories.UserRepository
}

func NewResumeService(resumeRepo repositories.ResumeRepository, userRepo repositories.UserRepository) ResumeService {
	return &ResumeServiceImpl{resumeRepo: resumeRepo, userRepo: userRepo}
}

func (s *ResumeServiceImpl) GetByID(db *gorm.DB, p *auth.Principal, id string) (*models.JobSeekerResume, error) {
	resume, err := s.findResume(db, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeResume(db, p, resume, auth.ActionRead); err != nil {
		return nil, err
	}
	return resume, nil
}

// List: административным ролям и работодателям видны все резюме,
// соискателю - только собственные.
func (s *ResumeServiceImpl) List(db *gorm.DB, p *auth.Principal, page, limit int) ([]models.JobSeekerResume, error) {
	offset, limit := Pagination(page, limit)

	var (
		resumes []models.JobSeekerResume
		err     error
	)
	if p.Role == models.UserRoleJobSeeker {
		resumes, err = s.resumeRepo.FindByUserID(db, p.ID, offset, limit)
	} else {
		resumes, err = s.resumeRepo.FindAll(db, offset, limit)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resumes, nil
}

func (s *ResumeServiceImpl) Create(db *gorm.DB, p *auth.Principal, req *dto.CreateResumeRequest) (*models.JobSeekerResume, error) {
	resume := &models.JobSeekerResume{
		JobTitle:            req.JobTitle,
		ProfessionalSummary: req.ProfessionalSummary,
		UserID:              p.ID,
	}
	if req.EmploymentStatus != "" {
		resume.EmploymentStatus = req.EmploymentStatus
	}
	if req.IsVisible != nil {
		resume.IsVisible = *req.IsVisible
	} else {
		resume.IsVisible = true
	}

	if err := s.resumeRepo.Create(db, resume); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

func (s *ResumeServiceImpl) Update(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateResumeRequest) (*models.JobSeekerResume, error) {
	resume, err := s.findResume(db, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeResume(db, p, resume, auth.ActionWrite); err != nil {
		return nil, err
	}

	if req.JobTitle != nil {
		resume.JobTitle = *req.JobTitle
	}
	if req.ProfessionalSummary != nil {
		resume.ProfessionalSummary = *req.ProfessionalSummary
	}
	if req.EmploymentStatus != nil {
		resume.EmploymentStatus = *req.EmploymentStatus
	}
	if req.IsVisible != nil {
		resume.IsVisible = *req.IsVisible
	}

	// Дочерние коллекции обновляются собственными операциями
	resume.Skills = nil
	resume.Educations = nil
	resume.WorkExperiences = nil

	if err := s.resumeRepo.Update(db, resume); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

func (s *ResumeServiceImpl) Delete(db *gorm.DB, p *auth.Principal, id string) error {
	resume, err := s.findResume(db, id)
	if err != nil {
		return err
	}

	if err := s.authorizeResume(db, p, resume, auth.ActionWrite); err != nil {
		return err
	}

	if err := s.resumeRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ResumeServiceImpl) AddSkill(db *gorm.DB, p *auth.Principal, resumeID string, req *dto.CreateSkillRequest) (*models.JobSeekerSkill, error) {
	if err := s.authorizeByResumeID(db, p, resumeID, auth.ActionWrite); err != nil {
		return nil, err
	}

	skill := &models.JobSeekerSkill{
		Name:     req.Name,
		Level:    req.Level,
		ResumeID: resumeID,
	}
	if err := s.resumeRepo.CreateSkill(db, skill); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skill, nil
}

func (s *ResumeServiceImpl) UpdateSkill(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateSkillRequest) (*models.JobSeekerSkill, error) {
	skill, err := s.resumeRepo.FindSkillByID(db, id)
	if err != nil {
		return nil, s.mapItemError(err)
	}
	if err := s.authorizeByResumeID(db, p, skill.ResumeID, auth.ActionWrite); err != nil {
		return nil, err
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Level != nil {
		skill.Level = *req.Level
	}

	if err := s.resumeRepo.UpdateSkill(db, skill); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skill, nil
}

func (s *ResumeServiceImpl) DeleteSkill(db *gorm.DB, p *auth.Principal, id string) error {
	skill, err := s.resumeRepo.FindSkillByID(db, id)
	if err != nil {
		return s.mapItemError(err)
	}
	if err := s.authorizeByResumeID(db, p, skill.ResumeID, auth.ActionWrite); err != nil {
		return err
	}
	if err := s.resumeRepo.DeleteSkill(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ResumeServiceImpl) AddEducation(db *gorm.DB, p *auth.Principal, resumeID string, req *dto.CreateEducationRequest) (*models.JobSeekerEducation, error) {
	if err := s.authorizeByResumeID(db, p, resumeID, auth.ActionWrite); err != nil {
		return nil, err
	}

	education := &models.JobSeekerEducation{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartedAt:    req.StartedAt,
		FinishedAt:   req.FinishedAt,
		ResumeID:     resumeID,
	}
	if err := s.resumeRepo.CreateEducation(db, education); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return education, nil
}

func (s *ResumeServiceImpl) UpdateEducation(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateEducationRequest) (*models.JobSeekerEducation, error) {
	education, err := s.resumeRepo.FindEducationByID(db, id)
	if err != nil {
		return nil, s.mapItemError(err)
	}
	if err := s.authorizeByResumeID(db, p, education.ResumeID, auth.ActionWrite); err != nil {
		return nil, err
	}

	if req.Institution != nil {
		education.Institution = *req.Institution
	}
	if req.Degree != nil {
		education.Degree = *req.Degree
	}
	if req.FieldOfStudy != nil {
		education.FieldOfStudy = *req.FieldOfStudy
	}
	if req.StartedAt != nil {
		education.StartedAt = req.StartedAt
	}
	if req.FinishedAt != nil {
		education.FinishedAt = req.FinishedAt
	}

	if err := s.resumeRepo.UpdateEducation(db, education); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return education, nil
}

func (s *ResumeServiceImpl) DeleteEducation(db *gorm.DB, p *auth.Principal, id string) error {
	education, err := s.resumeRepo.FindEducationByID(db, id)
	if err != nil {
		return s.mapItemError(err)
	}
	if err := s.authorizeByResumeID(db, p, education.ResumeID, auth.ActionWrite); err != nil {
		return err
	}
	if err := s.resumeRepo.DeleteEducation(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ResumeServiceImpl) AddWorkExperience(db *gorm.DB, p *auth.Principal, resumeID string, req *dto.CreateWorkExperienceRequest) (*models.JobSeekerWorkExperience, error) {
	if err := s.authorizeByResumeID(db, p, resumeID, auth.ActionWrite); err != nil {
		return nil, err
	}

	experience := &models.JobSeekerWorkExperience{
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Description: req.Description,
		StartedAt:   req.StartedAt,
		FinishedAt:  req.FinishedAt,
		ResumeID:    resumeID,
	}
	if err := s.resumeRepo.CreateWorkExperience(db, experience); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return experience, nil
}

func (s *ResumeServiceImpl) UpdateWorkExperience(db *gorm.DB, p *auth.Principal, id string, req *dto.UpdateWorkExperienceRequest) (*models.JobSeekerWorkExperience, error) {
	experience, err := s.resumeRepo.FindWorkExperienceByID(db, id)
	if err != nil {
		return nil, s.mapItemError(err)
	}
	if err := s.authorizeByResumeID(db, p, experience.ResumeID, auth.ActionWrite); err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		experience.CompanyName = *req.CompanyName
	}
	if req.JobTitle != nil {
		experience.JobTitle = *req.JobTitle
	}
	if req.Description != nil {
		experience.Description = *req.Description
	}
	if req.StartedAt != nil {
		experience.StartedAt = req.StartedAt
	}
	if req.FinishedAt != nil {
		experience.FinishedAt = req.FinishedAt
	}

	if err := s.resumeRepo.UpdateWorkExperience(db, experience); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return experience, nil
}

func (s *ResumeServiceImpl) DeleteWorkExperience(db *gorm.DB, p *auth.Principal, id string) error {
	experience, err := s.resumeRepo.FindWorkExperienceByID(db, id)
	if err != nil {
		return s.mapItemError(err)
	}
	if err := s.authorizeByResumeID(db, p, experience.ResumeID, auth.ActionWrite); err != nil {
		return err
	}
	if err := s.resumeRepo.DeleteWorkExperience(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ResumeServiceImpl) findResume(db *gorm.DB, id string) (*models.JobSeekerResume, error) {
	resume, err := s.resumeRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.NotFound("Resume")
		}
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

// authorizeByResumeID - владелец дочерней записи определяется через
// родительское резюме
func (s *ResumeServiceImpl) authorizeByResumeID(db *gorm.DB, p *auth.Principal, resumeID string, action auth.Action) error {
	resume, err := s.findResume(db, resumeID)
	if err != nil {
		return err
	}
	return s.authorizeResume(db, p, resume, action)
}

func (s *ResumeServiceImpl) authorizeResume(db *gorm.DB, p *auth.Principal, resume *models.JobSeekerResume, action auth.Action) error {
	ownerRole, err := s.ownerRole(db, resume.UserID)
	if err != nil {
		return err
	}
	return auth.Authorize(p, resume.UserID, ownerRole, auth.VisibilityEmployerRead, action)
}

func (s *ResumeServiceImpl) ownerRole(db *gorm.DB, userID string) (models.UserRole, error) {
	owner, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Владелец удален: наружу отдаем 404, а не 403,
			// чтобы не подтверждать существование записи
			return "", apperrors.NotFound("Resume")
		}
		return "", apperrors.InternalError(err)
	}
	return owner.Role, nil
}

func (s *ResumeServiceImpl) mapItemError(err error) error {
	if errors.Is(err, repositories.ErrResumeItemNotFound) {
		return apperrors.NotFound("Resume item")
	}
	return apperrors.InternalError(err)
}
