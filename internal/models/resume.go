package models

import "time"

type JobSeekerResume struct {
	BaseModel
	JobTitle            string           `gorm:"not null" json:"job_title"`
	ProfessionalSummary string           `json:"professional_summary"`
	EmploymentStatus    EmploymentStatus `gorm:"type:varchar(20);default:'seeking'" json:"employment_status"`
	IsVisible           bool             `gorm:"default:true" json:"is_visible"`
	UserID              string           `gorm:"type:uuid;not null;index" json:"user_id"`

	Skills          []JobSeekerSkill          `gorm:"foreignKey:ResumeID" json:"skills,omitempty"`
	Educations      []JobSeekerEducation      `gorm:"foreignKey:ResumeID" json:"educations,omitempty"`
	WorkExperiences []JobSeekerWorkExperience `gorm:"foreignKey:ResumeID" json:"work_experiences,omitempty"`
}

// Дочерние сущности резюме: владелец определяется через
// родительское резюме (один дополнительный lookup на запрос).

type JobSeekerSkill struct {
	BaseModel
	Name     string `gorm:"not null" json:"name"`
	Level    string `json:"level"`
	ResumeID string `gorm:"type:uuid;not null;index" json:"resume_id"`
}

type JobSeekerEducation struct {
	BaseModel
	Institution  string     `gorm:"not null" json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	ResumeID     string     `gorm:"type:uuid;not null;index" json:"resume_id"`
}

type JobSeekerWorkExperience struct {
	BaseModel
	CompanyName string     `gorm:"not null" json:"company_name"`
	JobTitle    string     `gorm:"not null" json:"job_title"`
	Description string     `json:"description"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
	ResumeID    string     `gorm:"type:uuid;not null;index" json:"resume_id"`
}
