package dto

import "jobport_backend/internal/models"

type CreateApplicationRequest struct {
	JobPostingID string `json:"job_posting_id" validate:"required,uuid"`
	ResumeID     string `json:"resume_id" validate:"required,uuid"`
	CoverLetter  string `json:"cover_letter" validate:"max=3000"`
}

// UpdateApplicationStatusRequest - смена статуса работодателем-владельцем
// вакансии или администратором.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}

type SaveJobRequest struct {
	JobPostingID string `json:"job_posting_id" validate:"required,uuid"`
}
