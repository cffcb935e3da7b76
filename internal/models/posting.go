package models

type JobPosting struct {
	BaseModel
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	City        string        `json:"city"`
	SalaryFrom  *int64        `json:"salary_from,omitempty"`
	SalaryTo    *int64        `json:"salary_to,omitempty"`
	Status      PostingStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	CompanyID   string        `gorm:"type:uuid;not null;index" json:"company_id"`

	Company *EmployerCompany `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}
