package dto

import "jobport_backend/internal/models"

type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// UpdateUserStatusRequest - административное действие
type UpdateUserStatusRequest struct {
	AccountStatus models.AccountStatus `json:"account_status" validate:"required,oneof=active inactive suspended"`
}

type ListUsersQuery struct {
	Role   string `form:"role"`
	Status string `form:"status"`
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
