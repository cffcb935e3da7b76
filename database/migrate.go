package database

import (
	"fmt"

	"jobport_backend/internal/config"
	"jobport_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с DSN из конфигурации
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.EmployerCompany{},
		&models.JobPosting{},
		&models.JobSeekerResume{},
		&models.JobSeekerSkill{},
		&models.JobSeekerEducation{},
		&models.JobSeekerWorkExperience{},
		&models.JobApplication{},
		&models.SavedJob{},
		&models.Notification{},
	)
}
