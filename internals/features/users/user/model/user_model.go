package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the global identity; membership in organizations lives in
// user_roles.
type UserModel struct {
	UserID            uuid.UUID      `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserEmail         string         `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword      string         `gorm:"column:user_password;not null" json:"-"`
	UserFullName      string         `gorm:"column:user_full_name;size:100;not null" json:"user_full_name"`
	UserIsGlobalAdmin bool           `gorm:"column:user_is_global_admin;not null;default:false" json:"user_is_global_admin"`
	UserIsActive      bool           `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
