package handlers

import (
	"errors"
	"net/http"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/middleware"
	"jobport_backend/internal/validator"
	"jobport_backend/pkg/apperrors"
	"jobport_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler - общие утилиты для всех хендлеров
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB достает *gorm.DB, положенный DBMiddleware
func (h *BaseHandler) GetDB(c *gin.Context) (*gorm.DB, bool) {
	val, exists := c.Get(string(contextkeys.DBContextKey))
	if !exists {
		apperrors.HandleError(c, apperrors.InternalError(errors.New("database not found in context")))
		return nil, false
	}
	db, ok := val.(*gorm.DB)
	if !ok {
		apperrors.HandleError(c, apperrors.InternalError(errors.New("invalid database in context")))
		return nil, false
	}
	return db, true
}

// GetPrincipal достает принципала, положенного CurrentUser
func (h *BaseHandler) GetPrincipal(c *gin.Context) (*auth.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return nil, false
	}
	return principal, true
}

// BindAndValidate_JSON - привязка JSON тела и валидация DTO
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid JSON body"))
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// BindAndValidate_Query - привязка query-параметров и валидация DTO
func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError - единая трансляция ошибок сервисного слоя
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// OK и Created - короткие ответы успеха
func (h *BaseHandler) OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func (h *BaseHandler) Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
