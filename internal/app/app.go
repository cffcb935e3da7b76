package app

import (
	"errors"
	"fmt"
	"time"

	"jobport_backend/database"
	"jobport_backend/internal/auth"
	"jobport_backend/internal/config"
	"jobport_backend/internal/email"
	"jobport_backend/internal/handlers"
	"jobport_backend/internal/logger"
	"jobport_backend/internal/middleware"
	"jobport_backend/internal/models"
	"jobport_backend/internal/repositories"
	"jobport_backend/internal/routes"
	"jobport_backend/internal/services"
	"jobport_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полностью готовый *gin.Engine.
// Вынесен отдельно, чтобы интеграционные тесты поднимали тот же стек.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	codec := auth.NewTokenCodec(cfg.Auth.Secret)

	binding, err := auth.NewKeyBindingVerifier(cfg.Auth.BindingMode)
	if err != nil {
		logger.Fatal("Failed to initialize key binding verifier", "error", err)
	}
	logger.Info("Key binding verifier initialized", "mode", cfg.Auth.BindingMode)

	serviceContainer := initializeServices(cfg, codec, binding)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.SetupRoutes(ginRouter, appHandlers, codec, binding)

	return ginRouter
}

func initializeServices(cfg *config.Config, codec *auth.TokenCodec, binding auth.KeyBindingVerifier) *services.ServiceContainer {
	emailProvider := email.NewProvider(cfg.Email)

	userRepo := repositories.NewUserRepository()
	companyRepo := repositories.NewCompanyRepository()
	postingRepo := repositories.NewPostingRepository()
	resumeRepo := repositories.NewResumeRepository()
	applicationRepo := repositories.NewApplicationRepository()
	notificationRepo := repositories.NewNotificationRepository()

	accessTTL := time.Duration(cfg.Auth.AccessTTLMinutes) * time.Minute
	refreshTTL := time.Duration(cfg.Auth.RefreshTTLMinutes) * time.Minute

	notificationService := services.NewNotificationService(notificationRepo, userRepo, emailProvider)

	return &services.ServiceContainer{
		Auth:         services.NewAuthService(userRepo, codec, binding, accessTTL, refreshTTL),
		User:         services.NewUserService(userRepo),
		Company:      services.NewCompanyService(companyRepo, userRepo),
		Posting:      services.NewPostingService(postingRepo, companyRepo, userRepo),
		Resume:       services.NewResumeService(resumeRepo, userRepo),
		Application:  services.NewApplicationService(applicationRepo, postingRepo, resumeRepo, userRepo, notificationService),
		Notification: notificationService,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	return handlers.NewAppHandlers(sc, validator.New())
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin создает учетку full_admin при первом старте.
// Публичная регистрация административных ролей запрещена, поэтому
// первый админ появляется только отсюда.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	username := cfg.Auth.SeedAdminUsername
	adminEmail := cfg.Auth.SeedAdminEmail
	password := cfg.Auth.SeedAdminPassword

	if username == "" || adminEmail == "" || password == "" {
		logger.Warn("Seed admin credentials are not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "username", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		FullName:     "Platform Administrator",
		Username:     username,
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleFullAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "username", username)
	return nil
}
