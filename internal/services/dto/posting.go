package dto

import "jobport_backend/internal/models"

type CreatePostingRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"max=5000"`
	City        string `json:"city" validate:"max=100"`
	SalaryFrom  *int64 `json:"salary_from,omitempty" validate:"omitempty,min=0"`
	SalaryTo    *int64 `json:"salary_to,omitempty" validate:"omitempty,min=0"`
	CompanyID   string `json:"company_id" validate:"required,uuid"`
}

type UpdatePostingRequest struct {
	Title       *string               `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string               `json:"description,omitempty" validate:"omitempty,max=5000"`
	City        *string               `json:"city,omitempty" validate:"omitempty,max=100"`
	SalaryFrom  *int64                `json:"salary_from,omitempty" validate:"omitempty,min=0"`
	SalaryTo    *int64                `json:"salary_to,omitempty" validate:"omitempty,min=0"`
	Status      *models.PostingStatus `json:"status,omitempty" validate:"omitempty,oneof=active closed draft"`
	// CompanyID меняет принадлежность; принимается только от full_admin
	CompanyID *string `json:"company_id,omitempty" validate:"omitempty,uuid"`
}

type ListPostingsQuery struct {
	City      string `form:"city"`
	CompanyID string `form:"company_id"`
	Status    string `form:"status"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}
