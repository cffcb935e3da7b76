package models

type EmployerCompany struct {
	BaseModel
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Description string  `json:"description"`
	City        string  `json:"city"`
	Website     *string `json:"website,omitempty"`
	UserID      string  `gorm:"type:uuid;not null;index" json:"user_id"`

	Postings []JobPosting `gorm:"foreignKey:CompanyID" json:"-"`
}
