package repositories

import (
	"errors"

	"jobport_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("job application not found")
	ErrSavedJobNotFound    = errors.New("saved job not found")
	ErrSavedJobExists      = errors.New("job already saved")
)

type ApplicationRepository interface {
	FindByID(db *gorm.DB, id string) (*models.JobApplication, error)
	FindAll(db *gorm.DB, offset, limit int) ([]models.JobApplication, error)
	FindByUserID(db *gorm.DB, userID string, offset, limit int) ([]models.JobApplication, error)
	FindForEmployer(db *gorm.DB, employerID string, offset, limit int) ([]models.JobApplication, error)
	FindByUserAndPosting(db *gorm.DB, userID, postingID string) (*models.JobApplication, error)
	Create(db *gorm.DB, application *models.JobApplication) error
	Update(db *gorm.DB, application *models.JobApplication) error
	Delete(db *gorm.DB, id string) error

	FindSavedByID(db *gorm.DB, id string) (*models.SavedJob, error)
	FindSavedByUserID(db *gorm.DB, userID string, offset, limit int) ([]models.SavedJob, error)
	CreateSaved(db *gorm.DB, saved *models.SavedJob) error
	DeleteSaved(db *gorm.DB, id string) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := db.Preload("JobPosting").Preload("JobPosting.Company").Preload("Resume").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB, offset, limit int) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Preload("JobPosting").
		Order("created_at desc").Offset(offset).Limit(limit).Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByUserID(db *gorm.DB, userID string, offset, limit int) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Preload("JobPosting").
		Where("user_id = ?", userID).
		Order("created_at desc").Offset(offset).Limit(limit).Find(&applications).Error
	return applications, err
}

// FindForEmployer - отклики на вакансии компаний, принадлежащих работодателю
func (r *ApplicationRepositoryImpl) FindForEmployer(db *gorm.DB, employerID string, offset, limit int) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Preload("JobPosting").Preload("Resume").
		Joins("JOIN job_postings ON job_postings.id = job_applications.job_posting_id").
		Joins("JOIN employer_companies ON employer_companies.id = job_postings.company_id").
		Where("employer_companies.user_id = ?", employerID).
		Order("job_applications.created_at desc").
		Offset(offset).Limit(limit).Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByUserAndPosting(db *gorm.DB, userID, postingID string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := db.Where("user_id = ? AND job_posting_id = ?", userID, postingID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.JobApplication) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, application *models.JobApplication) error {
	return db.Save(application).Error
}

func (r *ApplicationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.JobApplication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindSavedByID(db *gorm.DB, id string) (*models.SavedJob, error) {
	var saved models.SavedJob
	err := db.First(&saved, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavedJobNotFound
		}
		return nil, err
	}
	return &saved, nil
}

func (r *ApplicationRepositoryImpl) FindSavedByUserID(db *gorm.DB, userID string, offset, limit int) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := db.Preload("JobPosting").
		Where("user_id = ?", userID).
		Order("created_at desc").Offset(offset).Limit(limit).Find(&saved).Error
	return saved, err
}

func (r *ApplicationRepositoryImpl) CreateSaved(db *gorm.DB, saved *models.SavedJob) error {
	var existing models.SavedJob
	err := db.Where("user_id = ? AND job_posting_id = ?", saved.UserID, saved.JobPostingID).
		First(&existing).Error
	if err == nil {
		return ErrSavedJobExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(saved).Error
}

func (r *ApplicationRepositoryImpl) DeleteSaved(db *gorm.DB, id string) error {
	result := db.Delete(&models.SavedJob{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}
