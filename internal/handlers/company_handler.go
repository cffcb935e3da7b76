package handlers

import (
	"strconv"

	"jobport_backend/internal/services"
	"jobport_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, companyService: companyService}
}

// List - GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	companies, err := h.companyService.List(db, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, companies)
}

// ListMine - GET /companies/my
func (h *CompanyHandler) ListMine(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	companies, err := h.companyService.ListMine(db, principal, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, companies)
}

// GetByID - GET /companies/:id
func (h *CompanyHandler) GetByID(c *gin.Context) {
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, company)
}

// Create - POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
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

	company, err := h.companyService.Create(db, principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, company)
}

// Update - PATCH /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.UpdateCompanyRequest
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

	company, err := h.companyService.Update(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, company)
}

// Delete - DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.companyService.Delete(db, principal, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

// pageParams - пагинация из query без отдельного DTO
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	limit, _ = strconv.Atoi(c.Query("limit"))
	return page, limit
}
