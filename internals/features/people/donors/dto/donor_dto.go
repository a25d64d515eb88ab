package dto

type CreateDonorDTO struct {
	Type     string  `json:"type" validate:"required,oneof=individual company"`
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Document *string `json:"document" validate:"omitempty,max=30"`
	Notes    *string `json:"notes"`
}

type UpdateDonorDTO struct {
	Type     *string `json:"type" validate:"omitempty,oneof=individual company"`
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Document *string `json:"document" validate:"omitempty,max=30"`
	Notes    *string `json:"notes"`
}
