package dto

import (
	"time"

	"jobport_backend/internal/models"
)

type CreateResumeRequest struct {
	JobTitle            string                  `json:"job_title" validate:"required,min=2,max=150"`
	ProfessionalSummary string                  `json:"professional_summary" validate:"max=3000"`
	EmploymentStatus    models.EmploymentStatus `json:"employment_status" validate:"omitempty,oneof=seeking employed open_to_offers"`
	IsVisible           *bool                   `json:"is_visible,omitempty"`
}

type UpdateResumeRequest struct {
	JobTitle            *string                  `json:"job_title,omitempty" validate:"omitempty,min=2,max=150"`
	ProfessionalSummary *string                  `json:"professional_summary,omitempty" validate:"omitempty,max=3000"`
	EmploymentStatus    *models.EmploymentStatus `json:"employment_status,omitempty" validate:"omitempty,oneof=seeking employed open_to_offers"`
	IsVisible           *bool                    `json:"is_visible,omitempty"`
}

type CreateSkillRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Level string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

type UpdateSkillRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Level *string `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

type CreateEducationRequest struct {
	Institution  string     `json:"institution" validate:"required,min=2,max=200"`
	Degree       string     `json:"degree" validate:"max=100"`
	FieldOfStudy string     `json:"field_of_study" validate:"max=150"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}

type UpdateEducationRequest struct {
	Institution  *string    `json:"institution,omitempty" validate:"omitempty,min=2,max=200"`
	Degree       *string    `json:"degree,omitempty" validate:"omitempty,max=100"`
	FieldOfStudy *string    `json:"field_of_study,omitempty" validate:"omitempty,max=150"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}

type CreateWorkExperienceRequest struct {
	CompanyName string     `json:"company_name" validate:"required,min=2,max=200"`
	JobTitle    string     `json:"job_title" validate:"required,min=2,max=150"`
	Description string     `json:"description" validate:"max=3000"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

type UpdateWorkExperienceRequest struct {
	CompanyName *string    `json:"company_name,omitempty" validate:"omitempty,min=2,max=200"`
	JobTitle    *string    `json:"job_title,omitempty" validate:"omitempty,min=2,max=150"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=3000"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}
