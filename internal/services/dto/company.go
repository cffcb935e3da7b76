package dto

type CreateCompanyRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Description string  `json:"description" validate:"max=2000"`
	City        string  `json:"city" validate:"max=100"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	// UserID меняет владельца; принимается только от full_admin
	UserID *string `json:"user_id,omitempty" validate:"omitempty,uuid"`
}
