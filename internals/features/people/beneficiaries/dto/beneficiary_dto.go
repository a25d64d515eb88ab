package dto

import "time"

type CreateBeneficiaryDTO struct {
	FullName  string     `json:"full_name" validate:"required,min=3,max=100"`
	Email     *string    `json:"email" validate:"omitempty,email"`
	Phone     *string    `json:"phone" validate:"omitempty,max=30"`
	BirthDate *time.Time `json:"birth_date"`
	Address   *string    `json:"address"`
	Notes     *string    `json:"notes"`
}

type UpdateBeneficiaryDTO struct {
	FullName  *string    `json:"full_name" validate:"omitempty,min=3,max=100"`
	Email     *string    `json:"email" validate:"omitempty,email"`
	Phone     *string    `json:"phone" validate:"omitempty,max=30"`
	BirthDate *time.Time `json:"birth_date"`
	Address   *string    `json:"address"`
	Notes     *string    `json:"notes"`
	Status    *string    `json:"status" validate:"omitempty,oneof=active inactive"`
}
