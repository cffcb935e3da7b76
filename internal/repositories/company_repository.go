package repositories

import (
	"errors"

	"jobport_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	FindByID(db *gorm.DB, id string) (*models.EmployerCompany, error)
	FindAll(db *gorm.DB, offset, limit int) ([]models.EmployerCompany, error)
	FindByUserID(db *gorm.DB, userID string, offset, limit int) ([]models.EmployerCompany, error)
	Create(db *gorm.DB, company *models.EmployerCompany) error
	Update(db *gorm.DB, company *models.EmployerCompany) error
	Delete(db *gorm.DB, id string) error
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.EmployerCompany, error) {
	var company models.EmployerCompany
	err := db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindAll(db *gorm.DB, offset, limit int) ([]models.EmployerCompany, error) {
	var companies []models.EmployerCompany
	err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) FindByUserID(db *gorm.DB, userID string, offset, limit int) ([]models.EmployerCompany, error) {
	var companies []models.EmployerCompany
	err := db.Where("user_id = ?", userID).
		Order("created_at desc").Offset(offset).Limit(limit).Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.EmployerCompany) error {
	return db.Create(company).Error
}

func (r *CompanyRepositoryImpl) Update(db *gorm.DB, company *models.EmployerCompany) error {
	return db.Save(company).Error
}

func (r *CompanyRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.EmployerCompany{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
