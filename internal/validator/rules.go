package validator

import (
	"jobport_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует доменные правила валидации.
func registerCustomRules(v *validator.Validate) error {
	// user_role: значение должно быть одной из известных ролей
	return v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		switch models.UserRole(fl.Field().String()) {
		case models.UserRoleFullAdmin, models.UserRoleAdmin, models.UserRoleEmployer, models.UserRoleJobSeeker:
			return true
		}
		return false
	})
}
