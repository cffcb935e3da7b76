package handlers

import (
	"jobport_backend/internal/services"
	"jobport_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{BaseHandler: base, resumeService: resumeService}
}

// List - GET /resumes
func (h *ResumeHandler) List(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	resumes, err := h.resumeService.List(db, principal, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resumes)
}

// GetByID - GET /resumes/:id
func (h *ResumeHandler) GetByID(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	resume, err := h.resumeService.GetByID(db, principal, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resume)
}

// Create - POST /resumes
func (h *ResumeHandler) Create(c *gin.Context) {
	var req dto.CreateResumeRequest
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

	resume, err := h.resumeService.Create(db, principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, resume)
}

// Update - PATCH /resumes/:id
func (h *ResumeHandler) Update(c *gin.Context) {
	var req dto.UpdateResumeRequest
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

	resume, err := h.resumeService.Update(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resume)
}

// Delete - DELETE /resumes/:id
func (h *ResumeHandler) Delete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.resumeService.Delete(db, principal, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

// AddSkill - POST /resumes/:id/skills
func (h *ResumeHandler) AddSkill(c *gin.Context) {
	var req dto.CreateSkillRequest
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

	skill, err := h.resumeService.AddSkill(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, skill)
}

// UpdateSkill - PATCH /resume-skills/:id
func (h *ResumeHandler) UpdateSkill(c *gin.Context) {
	var req dto.UpdateSkillRequest
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

	skill, err := h.resumeService.UpdateSkill(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, skill)
}

// DeleteSkill - DELETE /resume-skills/:id
func (h *ResumeHandler) DeleteSkill(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.resumeService.DeleteSkill(db, principal, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

// AddEducation - POST /resumes/:id/educations
func (h *ResumeHandler) AddEducation(c *gin.Context) {
	var req dto.CreateEducationRequest
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

	education, err := h.resumeService.AddEducation(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, education)
}

// UpdateEducation - PATCH /resume-educations/:id
func (h *ResumeHandler) UpdateEducation(c *gin.Context) {
	var req dto.UpdateEducationRequest
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

	education, err := h.resumeService.UpdateEducation(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, education)
}

// DeleteEducation - DELETE /resume-educations/:id
func (h *ResumeHandler) DeleteEducation(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.resumeService.DeleteEducation(db, principal, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

// AddWorkExperience - POST /resumes/:id/work-experiences
func (h *ResumeHandler) AddWorkExperience(c *gin.Context) {
	var req dto.CreateWorkExperienceRequest
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

	experience, err := h.resumeService.AddWorkExperience(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, experience)
}

// UpdateWorkExperience - PATCH /resume-work-experiences/:id
func (h *ResumeHandler) UpdateWorkExperience(c *gin.Context) {
	var req dto.UpdateWorkExperienceRequest
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

	experience, err := h.resumeService.UpdateWorkExperience(db, principal, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, experience)
}

// DeleteWorkExperience - DELETE /resume-work-experiences/:id
func (h *ResumeHandler) DeleteWorkExperience(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.resumeService.DeleteWorkExperience(db, principal, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}
