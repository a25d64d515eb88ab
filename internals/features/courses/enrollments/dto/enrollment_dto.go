package dto

type EnrollDTO struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Role   string `json:"role" validate:"omitempty,oneof=student instructor assistant observer"`
	Note   string `json:"note" validate:"omitempty,max=255"`
}

// EnrollmentResponse is the merged view of the role and progress signals.
type EnrollmentResponse struct {
	UserID          string `json:"user_id"`
	UserFullName    string `json:"user_full_name"`
	Role            string `json:"role"`
	IsActive        bool   `json:"is_active"`
	ProgressPercent int    `json:"progress_percent"`
	Status          string `json:"status"`
}
