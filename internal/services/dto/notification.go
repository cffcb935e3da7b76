package dto

type CreateNotificationRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Title  string `json:"title" validate:"required,min=1,max=200"`
	Body   string `json:"body" validate:"max=2000"`
}

type ListNotificationsQuery struct {
	OnlyUnread bool `form:"only_unread"`
	Page       int  `form:"page"`
	Limit      int  `form:"limit"`
}
