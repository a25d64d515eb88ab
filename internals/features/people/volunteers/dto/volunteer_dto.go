package dto

type CreateVolunteerDTO struct {
	FullName     string   `json:"full_name" validate:"required,min=3,max=100"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Phone        *string  `json:"phone" validate:"omitempty,max=30"`
	Skills       []string `json:"skills" validate:"omitempty,dive,max=50"`
	Availability *string  `json:"availability" validate:"omitempty,max=50"`
}

type UpdateVolunteerDTO struct {
	FullName     *string  `json:"full_name" validate:"omitempty,min=3,max=100"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Phone        *string  `json:"phone" validate:"omitempty,max=30"`
	Skills       []string `json:"skills" validate:"omitempty,dive,max=50"`
	Availability *string  `json:"availability" validate:"omitempty,max=50"`
	Status       *string  `json:"status" validate:"omitempty,oneof=active inactive"`
}
