package dto

import "time"

type CreateProjectDTO struct {
	Name        string     `json:"name" validate:"required,min=3,max=150"`
	Description *string    `json:"description"`
	FunderID    *string    `json:"funder_id" validate:"omitempty,uuid4"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	BudgetCents int64      `json:"budget_cents" validate:"gte=0"`
}

type UpdateProjectDTO struct {
	Name        *string    `json:"name" validate:"omitempty,min=3,max=150"`
	Description *string    `json:"description"`
	FunderID    *string    `json:"funder_id" validate:"omitempty,uuid4"`
	Status      *string    `json:"status" validate:"omitempty,oneof=planning active completed canceled"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	BudgetCents *int64     `json:"budget_cents" validate:"omitempty,gte=0"`
}
