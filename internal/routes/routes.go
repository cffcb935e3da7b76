package routes

import (
	"net/http"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/handlers"
	"jobport_backend/internal/middleware"
	"jobport_backend/internal/models"

	"github.com/gin-gonic/gin"
)

var (
	adminRoles    = []models.UserRole{models.UserRoleFullAdmin, models.UserRoleAdmin}
	employerWrite = []models.UserRole{models.UserRoleFullAdmin, models.UserRoleAdmin, models.UserRoleEmployer}
	seekerWrite   = []models.UserRole{models.UserRoleFullAdmin, models.UserRoleAdmin, models.UserRoleJobSeeker}
)

// SetupRoutes регистрирует все маршруты. Ролевые ограничения задаются
// только здесь, хендлеры ролей не проверяют; владение и видимость
// конкретных записей проверяют сервисы.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers, codec *auth.TokenCodec, binding auth.KeyBindingVerifier) {
	r.GET("/api-status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/sign-up", h.Auth.SignUp)
	r.POST("/login", h.Auth.Login)
	r.POST("/refresh-token", h.Auth.Refresh)

	authed := r.Group("/")
	authed.Use(middleware.CurrentUser(codec, binding))

	authed.GET("/get_me", h.User.GetMe)

	users := authed.Group("/users")
	{
		users.GET("", middleware.RequireRoles(adminRoles...), h.User.List)
		users.GET("/:id", h.User.GetByID)
		users.PATCH("/:id", h.User.Update)
		users.PATCH("/:id/status", middleware.RequireRoles(adminRoles...), h.User.UpdateStatus)
		users.DELETE("/:id", middleware.RequireRoles(adminRoles...), h.User.Delete)
	}

	companies := authed.Group("/companies")
	{
		companies.GET("", middleware.RequireRoles(), h.Company.List)
		companies.GET("/my", middleware.RequireRoles(employerWrite...), h.Company.ListMine)
		companies.GET("/:id", middleware.RequireRoles(), h.Company.GetByID)
		companies.POST("", middleware.RequireRoles(employerWrite...), h.Company.Create)
		companies.PATCH("/:id", middleware.RequireRoles(employerWrite...), h.Company.Update)
		companies.DELETE("/:id", middleware.RequireRoles(employerWrite...), h.Company.Delete)
	}

	postings := authed.Group("/job-postings")
	{
		postings.GET("", middleware.RequireRoles(), h.Posting.List)
		postings.GET("/:id", middleware.RequireRoles(), h.Posting.GetByID)
		postings.POST("", middleware.RequireRoles(employerWrite...), h.Posting.Create)
		postings.PATCH("/:id", middleware.RequireRoles(employerWrite...), h.Posting.Update)
		postings.DELETE("/:id", middleware.RequireRoles(employerWrite...), h.Posting.Delete)
	}

	resumes := authed.Group("/resumes")
	{
		// Читать резюме могут все роли, работодателя на запись нет
		resumes.GET("", middleware.RequireRoles(), h.Resume.List)
		resumes.GET("/:id", middleware.RequireRoles(), h.Resume.GetByID)
		resumes.POST("", middleware.RequireRoles(seekerWrite...), h.Resume.Create)
		resumes.PATCH("/:id", middleware.RequireRoles(seekerWrite...), h.Resume.Update)
		resumes.DELETE("/:id", middleware.RequireRoles(seekerWrite...), h.Resume.Delete)

		resumes.POST("/:id/skills", middleware.RequireRoles(seekerWrite...), h.Resume.AddSkill)
		resumes.POST("/:id/educations", middleware.RequireRoles(seekerWrite...), h.Resume.AddEducation)
		resumes.POST("/:id/work-experiences", middleware.RequireRoles(seekerWrite...), h.Resume.AddWorkExperience)
	}

	skills := authed.Group("/resume-skills")
	{
		skills.PATCH("/:id", middleware.RequireRoles(seekerWrite...), h.Resume.UpdateSkill)
		skills.DELETE("/:id", middleware.RequireRoles(seekerWrite...), h.Resume.DeleteSkill)
	}

	educations := authed.Group("/resume-educations")
	{
		educations.PATCH("/:id", middleware.RequireRoles(seekerWrite...), h.Resume.UpdateEducation)
		educations.DELETE("/:id", middleware.RequireRoles(seekerWrite...), h.Resume.DeleteEducation)
	}

	experiences := authed.Group("/resume-work-experiences")
	{
		experiences.PATCH("/:id", middleware.RequireRoles(seekerWrite...), h.Resume.UpdateWorkExperience)
		experiences.DELETE("/:id", middleware.RequireRoles(seekerWrite...), h.Resume.DeleteWorkExperience)
	}

	applications := authed.Group("/applications")
	{
		applications.GET("", middleware.RequireRoles(), h.Application.List)
		applications.GET("/:id", middleware.RequireRoles(), h.Application.GetByID)
		applications.POST("", middleware.RequireRoles(seekerWrite...), h.Application.Create)
		applications.PATCH("/:id/status", middleware.RequireRoles(employerWrite...), h.Application.UpdateStatus)
		applications.DELETE("/:id", middleware.RequireRoles(seekerWrite...), h.Application.Delete)
	}

	savedJobs := authed.Group("/saved-jobs")
	{
		savedJobs.GET("", middleware.RequireRoles(seekerWrite...), h.Application.ListSaved)
		savedJobs.POST("", middleware.RequireRoles(seekerWrite...), h.Application.SaveJob)
		savedJobs.DELETE("/:id", middleware.RequireRoles(seekerWrite...), h.Application.UnsaveJob)
	}

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", middleware.RequireRoles(), h.Notification.List)
		notifications.POST("", middleware.RequireRoles(adminRoles...), h.Notification.Create)
		notifications.POST("/read-all", middleware.RequireRoles(), h.Notification.MarkAllRead)
		notifications.PATCH("/:id/read", middleware.RequireRoles(), h.Notification.MarkRead)
		notifications.DELETE("/:id", middleware.RequireRoles(), h.Notification.Delete)
	}
}
