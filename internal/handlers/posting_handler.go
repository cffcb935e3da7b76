package handlers

import (
	"jobport_backend/internal/services"
	"jobport_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostingHandler struct {
	*BaseHandler
	postingService services.PostingService
}

func NewPostingHandler(base *BaseHandler, postingService services.PostingService) *PostingHandler {
	return &PostingHandler{BaseHandler: base, postingService: postingService}
}

// List - GET /job-postings
func (h *PostingHandler) List(c *gin.Context) {
	var query dto.ListPostingsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	postings, err := h.postingService.List(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, postings)
}

// GetByID - GET /job-postings/:id
func (h *PostingHandler) GetByID(c *gin.Context) {
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	posting, err := h.postingService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, posting)
}

// Create - POST /job-postings
func (h *PostingHandler) Create(c *gin.Context) {
	var req dto.CreatePostingRequest
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

	posting, err := h.postingService.Create(db, principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, posting)
}

// Update - PATCH /job-postings/:id
func (h *PostingHandler) Update(c *gin.Context) {
	var req dto.UpdatePostingRequest
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

	posting, err := h.postingService.Update(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, posting)
}

// Delete - DELETE /job-postings/:id
func (h *PostingHandler) Delete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.postingService.Delete(db, principal, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}
