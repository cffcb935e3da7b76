package dto

import "jobport_backend/internal/models"

type SignUpRequest struct {
	FullName string          `json:"full_name" validate:"required,min=2,max=100"`
	Username string          `json:"username" validate:"required,min=3,max=50"`
	Email    string          `json:"email" validate:"required,email"`
	Phone    *string         `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" validate:"required,user_role"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - пара токенов. TokenType всегда "bearer".
type LoginResponse struct {
	UserID           string          `json:"user_id"`
	Role             models.UserRole `json:"role"`
	AccessToken      string          `json:"access_token"`
	RefreshToken     string          `json:"refresh_token"`
	TokenType        string          `json:"token_type"`
	AccessExpiresIn  int64           `json:"access_expires_in"`
	RefreshExpiresIn int64           `json:"refresh_expires_in"`
}

type RefreshResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	TokenType        string `json:"token_type"`
	AccessExpiresIn  int64  `json:"access_expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
}
