package models

type JobApplication struct {
	BaseModel
	Status       ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetter  string            `json:"cover_letter"`
	UserID       string            `gorm:"type:uuid;not null;index" json:"user_id"`
	ResumeID     string            `gorm:"type:uuid;not null;index" json:"resume_id"`
	JobPostingID string            `gorm:"type:uuid;not null;index" json:"job_posting_id"`

	Resume     *JobSeekerResume `gorm:"foreignKey:ResumeID" json:"resume,omitempty"`
	JobPosting *JobPosting      `gorm:"foreignKey:JobPostingID" json:"job_posting,omitempty"`
}

type SavedJob struct {
	BaseModel
	UserID       string `gorm:"type:uuid;not null;index:idx_saved_user_posting,unique" json:"user_id"`
	JobPostingID string `gorm:"type:uuid;not null;index:idx_saved_user_posting,unique" json:"job_posting_id"`

	JobPosting *JobPosting `gorm:"foreignKey:JobPostingID" json:"job_posting,omitempty"`
}
