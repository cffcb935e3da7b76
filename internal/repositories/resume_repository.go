package repositories

import (
	"errors"

	"jobport_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrResumeNotFound     = errors.New("resume not found")
	ErrResumeItemNotFound = errors.New("resume item not found")
)

type ResumeRepository interface {
	FindByID(db *gorm.DB, id string) (*models.JobSeekerResume, error)
	FindAll(db *gorm.DB, offset, limit int) ([]models.JobSeekerResume, error)
	FindByUserID(db *gorm.DB, userID string, offset, limit int) ([]models.JobSeekerResume, error)
	Create(db *gorm.DB, resume *models.JobSeekerResume) error
	Update(db *gorm.DB, resume *models.JobSeekerResume) error
	Delete(db *gorm.DB, id string) error

	FindSkillByID(db *gorm.DB, id string) (*models.JobSeekerSkill, error)
	CreateSkill(db *gorm.DB, skill *models.JobSeekerSkill) error
	UpdateSkill(db *gorm.DB, skill *models.JobSeekerSkill) error
	DeleteSkill(db *gorm.DB, id string) error

	FindEducationByID(db *gorm.DB, id string) (*models.JobSeekerEducation, error)
	CreateEducation(db *gorm.DB, education *models.JobSeekerEducation) error
	UpdateEducation(db *gorm.DB, education *models.JobSeekerEducation) error
	DeleteEducation(db *gorm.DB, id string) error

	FindWorkExperienceByID(db *gorm.DB, id string) (*models.JobSeekerWorkExperience, error)
	CreateWorkExperience(db *gorm.DB, experience *models.JobSeekerWorkExperience) error
	UpdateWorkExperience(db *gorm.DB, experience *models.JobSeekerWorkExperience) error
	DeleteWorkExperience(db *gorm.DB, id string) error
}

type ResumeRepositoryImpl struct{}

func NewResumeRepository() ResumeRepository {
	return &ResumeRepositoryImpl{}
}

func (r *ResumeRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobSeekerResume, error) {
	var resume models.JobSeekerResume
	err := db.Preload("Skills").Preload("Educations").Preload("WorkExperiences").
		First(&resume, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) FindAll(db *gorm.DB, offset, limit int) ([]models.JobSeekerResume, error) {
	var resumes []models.JobSeekerResume
	err := db.Where("is_visible = ?", true).
		Order("created_at desc").Offset(offset).Limit(limit).Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepositoryImpl) FindByUserID(db *gorm.DB, userID string, offset, limit int) ([]models.JobSeekerResume, error) {
	var resumes []models.JobSeekerResume
	err := db.Where("user_id = ?", userID).
		Order("created_at desc").Offset(offset).Limit(limit).Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepositoryImpl) Create(db *gorm.DB, resume *models.JobSeekerResume) error {
	return db.Create(resume).Error
}

func (r *ResumeRepositoryImpl) Update(db *gorm.DB, resume *models.JobSeekerResume) error {
	return db.Save(resume).Error
}

func (r *ResumeRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.JobSeekerResume{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *ResumeRepositoryImpl) FindSkillByID(db *gorm.DB, id string) (*models.JobSeekerSkill, error) {
	var skill models.JobSeekerSkill
	err := db.First(&skill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeItemNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *ResumeRepositoryImpl) CreateSkill(db *gorm.DB, skill *models.JobSeekerSkill) error {
	return db.Create(skill).Error
}

func (r *ResumeRepositoryImpl) UpdateSkill(db *gorm.DB, skill *models.JobSeekerSkill) error {
	return db.Save(skill).Error
}

func (r *ResumeRepositoryImpl) DeleteSkill(db *gorm.DB, id string) error {
	return deleteResumeItem(db, &models.JobSeekerSkill{}, id)
}

func (r *ResumeRepositoryImpl) FindEducationByID(db *gorm.DB, id string) (*models.JobSeekerEducation, error) {
	var education models.JobSeekerEducation
	err := db.First(&education, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeItemNotFound
		}
		return nil, err
	}
	return &education, nil
}

func (r *ResumeRepositoryImpl) CreateEducation(db *gorm.DB, education *models.JobSeekerEducation) error {
	return db.Create(education).Error
}

func (r *ResumeRepositoryImpl) UpdateEducation(db *gorm.DB, education *models.JobSeekerEducation) error {
	return db.Save(education).Error
}

func (r *ResumeRepositoryImpl) DeleteEducation(db *gorm.DB, id string) error {
	return deleteResumeItem(db, &models.JobSeekerEducation{}, id)
}

func (r *ResumeRepositoryImpl) FindWorkExperienceByID(db *gorm.DB, id string) (*models.JobSeekerWorkExperience, error) {
	var experience models.JobSeekerWorkExperience
	err := db.First(&experience, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeItemNotFound
		}
		return nil, err
	}
	return &experience, nil
}

func (r *ResumeRepositoryImpl) CreateWorkExperience(db *gorm.DB, experience *models.JobSeekerWorkExperience) error {
	return db.Create(experience).Error
}

func (r *ResumeRepositoryImpl) UpdateWorkExperience(db *gorm.DB, experience *models.JobSeekerWorkExperience) error {
	return db.Save(experience).Error
}

func (r *ResumeRepositoryImpl) DeleteWorkExperience(db *gorm.DB, id string) error {
	return deleteResumeItem(db, &models.JobSeekerWorkExperience{}, id)
}

func deleteResumeItem(db *gorm.DB, model any, id string) error {
	result := db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeItemNotFound
	}
	return nil
}
