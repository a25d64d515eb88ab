package dto

type CreateFunderDTO struct {
	Name         string  `json:"name" validate:"required,min=2,max=150"`
	ContactName  *string `json:"contact_name" validate:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Notes        *string `json:"notes"`
}

type UpdateFunderDTO struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=150"`
	ContactName  *string `json:"contact_name" validate:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Notes        *string `json:"notes"`
}
