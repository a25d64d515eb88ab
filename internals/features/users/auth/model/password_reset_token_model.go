package model

import (
	"time"

	"github.com/google/uuid"
)

type PasswordResetTokenModel struct {
	PasswordResetTokenID        uuid.UUID  `gorm:"column:password_reset_token_id;type:uuid;default:gen_random_uuid();primaryKey" json:"password_reset_token_id"`
	PasswordResetTokenUserID    uuid.UUID  `gorm:"column:password_reset_token_user_id;type:uuid;not null;index" json:"password_reset_token_user_id"`
	PasswordResetTokenHash      []byte     `gorm:"column:password_reset_token_hash;not null;uniqueIndex" json:"-"`
	PasswordResetTokenExpiresAt time.Time  `gorm:"column:password_reset_token_expires_at;not null" json:"password_reset_token_expires_at"`
	PasswordResetTokenUsedAt    *time.Time `gorm:"column:password_reset_token_used_at" json:"password_reset_token_used_at,omitempty"`
	CreatedAt                   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
