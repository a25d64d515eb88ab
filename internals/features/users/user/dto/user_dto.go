package dto

type UpdateProfileDTO struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=100"`
}
