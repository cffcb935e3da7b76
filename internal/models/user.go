package models

type User struct {
	BaseModel
	FullName      string        `gorm:"not null" json:"full_name"`
	Username      string        `gorm:"uniqueIndex;not null" json:"username"`
	Email         string        `gorm:"uniqueIndex;not null" json:"email"`
	Phone         *string       `gorm:"uniqueIndex" json:"phone,omitempty"`
	PasswordHash  string        `gorm:"not null" json:"-"`
	Role          UserRole      `gorm:"type:varchar(20);not null" json:"role"`
	AccountStatus AccountStatus `gorm:"type:varchar(20);default:'active'" json:"account_status"`

	// Relations
	Companies     []EmployerCompany  `gorm:"foreignKey:UserID" json:"-"`
	Resumes       []JobSeekerResume  `gorm:"foreignKey:UserID" json:"-"`
	Applications  []JobApplication   `gorm:"foreignKey:UserID" json:"-"`
	SavedJobs     []SavedJob         `gorm:"foreignKey:UserID" json:"-"`
	Notifications []Notification     `gorm:"foreignKey:UserID" json:"-"`
}
