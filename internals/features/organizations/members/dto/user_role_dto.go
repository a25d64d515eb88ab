package dto

import "time"

type AssignRoleDTO struct {
	UserID    string     `json:"user_id" validate:"required,uuid4"`
	Role      string     `json:"role" validate:"required,oneof=admin manager volunteer beneficiary"`
	ExpiresAt *time.Time `json:"expires_at"`
	Note      *string    `json:"note" validate:"omitempty,max=255"`
}

type MemberResponse struct {
	UserID     string     `json:"user_id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	IsActive   bool       `json:"is_active"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	AssignedAt time.Time  `json:"assigned_at"`
}
