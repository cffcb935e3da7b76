package repositories

import (
	"errors"

	"jobport_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostingNotFound = errors.New("job posting not found")

type PostingFilter struct {
	City      string
	CompanyID string
	Status    models.PostingStatus
	Search    string
	Offset    int
	Limit     int
}

type PostingRepository interface {
	FindByID(db *gorm.DB, id string) (*models.JobPosting, error)
	FindWithFilter(db *gorm.DB, filter PostingFilter) ([]models.JobPosting, error)
	Create(db *gorm.DB, posting *models.JobPosting) error
	Update(db *gorm.DB, posting *models.JobPosting) error
	Delete(db *gorm.DB, id string) error
}

type PostingRepositoryImpl struct{}

func NewPostingRepository() PostingRepository {
	return &PostingRepositoryImpl{}
}

func (r *PostingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobPosting, error) {
	var posting models.JobPosting
	// Company нужен всегда: владелец вакансии определяется через компанию
	err := db.Preload("Company").First(&posting, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, err
	}
	return &posting, nil
}

func (r *PostingRepositoryImpl) FindWithFilter(db *gorm.DB, filter PostingFilter) ([]models.JobPosting, error) {
	query := db.Model(&models.JobPosting{}).Preload("Company")

	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var postings []models.JobPosting
	err := query.Order("created_at desc").Offset(filter.Offset).Limit(filter.Limit).Find(&postings).Error
	return postings, err
}

func (r *PostingRepositoryImpl) Create(db *gorm.DB, posting *models.JobPosting) error {
	return db.Create(posting).Error
}

func (r *PostingRepositoryImpl) Update(db *gorm.DB, posting *models.JobPosting) error {
	return db.Save(posting).Error
}

func (r *PostingRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.JobPosting{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostingNotFound
	}
	return nil
}
