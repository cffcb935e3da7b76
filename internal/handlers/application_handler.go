package handlers

import (
	"jobport_backend/internal/services"
	"jobport_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

// List - GET /applications
func (h *ApplicationHandler) List(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	applications, err := h.applicationService.List(db, principal, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, applications)
}

// GetByID - GET /applications/:id
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	application, err := h.applicationService.GetByID(db, principal, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, application)
}

// Create - POST /applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	application, err := h.applicationService.Create(db, principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, application)
}

// UpdateStatus - PATCH /applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	application, err := h.applicationService.UpdateStatus(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, application)
}

// Delete - DELETE /applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.applicationService.Delete(db, principal, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

// SaveJob - POST /saved-jobs
func (h *ApplicationHandler) SaveJob(c *gin.Context) {
	var req dto.SaveJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	saved, err := h.applicationService.SaveJob(db, principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, saved)
}

// ListSaved - GET /saved-jobs
func (h *ApplicationHandler) ListSaved(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	saved, err := h.applicationService.ListSaved(db, principal, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, saved)
}

// UnsaveJob - DELETE /saved-jobs/:id
func (h *ApplicationHandler) UnsaveJob(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.applicationService.UnsaveJob(db, principal, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}
