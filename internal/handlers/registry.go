package handlers

import (
	"jobport_backend/internal/services"
	"jobport_backend/internal/validator"
)

// AppHandlers - реестр хендлеров приложения
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Company      *CompanyHandler
	Posting      *PostingHandler
	Resume       *ResumeHandler
	Application  *ApplicationHandler
	Notification *NotificationHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.Auth),
		User:         NewUserHandler(base, sc.User),
		Company:      NewCompanyHandler(base, sc.Company),
		Posting:      NewPostingHandler(base, sc.Posting),
		Resume:       NewResumeHandler(base, sc.Resume),
		Application:  NewApplicationHandler(base, sc.Application),
		Notification: NewNotificationHandler(base, sc.Notification),
	}
}
