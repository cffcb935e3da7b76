package models

type Notification struct {
	BaseModel
	Title  string `gorm:"not null" json:"title"`
	Body   string `json:"body"`
	IsRead bool   `gorm:"default:false" json:"is_read"`
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
}
