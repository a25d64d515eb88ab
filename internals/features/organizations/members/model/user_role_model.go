package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleModel is the per-organization membership row. Business rule: one
// active role per (user, organization); the partial unique index
// uq_user_roles_active on (user_role_user_id, user_role_organization_id)
// WHERE user_role_is_active makes concurrent duplicate inserts fail instead
// of silently duplicating.
type UserRoleModel struct {
	UserRoleID             uuid.UUID  `gorm:"column:user_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_role_id"`
	UserRoleUserID         uuid.UUID  `gorm:"column:user_role_user_id;type:uuid;not null;index" json:"user_role_user_id"`
	UserRoleOrganizationID uuid.UUID  `gorm:"column:user_role_organization_id;type:uuid;not null;index" json:"user_role_organization_id"`
	UserRoleRole           string     `gorm:"column:user_role_role;size:20;not null" json:"user_role_role"`
	UserRoleIsActive       bool       `gorm:"column:user_role_is_active;not null;default:true" json:"user_role_is_active"`
	UserRoleExpiresAt      *time.Time `gorm:"column:user_role_expires_at" json:"user_role_expires_at,omitempty"`
	UserRoleAssignedAt     time.Time  `gorm:"column:user_role_assigned_at;not null;default:now()" json:"user_role_assigned_at"`
	UserRoleAssignedBy     *uuid.UUID `gorm:"column:user_role_assigned_by;type:uuid" json:"user_role_assigned_by,omitempty"`
	UserRoleNote           *string    `gorm:"column:user_role_note" json:"user_role_note,omitempty"`
	CreatedAt              time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
