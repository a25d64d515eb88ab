package dto

import "time"

type CreateFinanceEntryDTO struct {
	ProjectID   *string    `json:"project_id" validate:"omitempty,uuid4"`
	Direction   string     `json:"direction" validate:"required,oneof=receivable payable"`
	Description string     `json:"description" validate:"required,min=3,max=255"`
	AmountCents int64      `json:"amount_cents" validate:"required,gt=0"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateFinanceEntryDTO struct {
	Description *string    `json:"description" validate:"omitempty,min=3,max=255"`
	AmountCents *int64     `json:"amount_cents" validate:"omitempty,gt=0"`
	DueDate     *time.Time `json:"due_date"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending paid overdue canceled"`
}
