package services

// ServiceContainer - реестр сервисов приложения
type ServiceContainer struct {
	Auth         AuthService
	User         UserService
	Company      CompanyService
	Posting      PostingService
	Resume       ResumeService
	Application  ApplicationService
	Notification NotificationService
}
