package handlers

import (
	"jobport_backend/internal/services"
	"jobport_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

// List - GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	var query dto.ListNotificationsQuery
	if !h.BindAndValidate_Query(c, &query) {
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

	notifications, err := h.notificationService.List(db, principal, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, notifications)
}

// Create - POST /notifications (административная операция)
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, notification)
}

// MarkRead - PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(db, principal, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, notification)
}

// MarkAllRead - POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(db, principal); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete - DELETE /notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.notificationService.Delete(db, principal, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}
