package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BeneficiaryModel struct {
	BeneficiaryID             uuid.UUID      `gorm:"column:beneficiary_id;type:uuid;default:gen_random_uuid();primaryKey" json:"beneficiary_id"`
	BeneficiaryOrganizationID uuid.UUID      `gorm:"column:beneficiary_organization_id;type:uuid;not null;index" json:"beneficiary_organization_id"`
	BeneficiaryUserID         *uuid.UUID     `gorm:"column:beneficiary_user_id;type:uuid" json:"beneficiary_user_id,omitempty"`
	BeneficiaryFullName       string         `gorm:"column:beneficiary_full_name;size:100;not null" json:"beneficiary_full_name"`
	BeneficiaryEmail          *string        `gorm:"column:beneficiary_email;size:255" json:"beneficiary_email,omitempty"`
	BeneficiaryPhone          *string        `gorm:"column:beneficiary_phone;size:30" json:"beneficiary_phone,omitempty"`
	BeneficiaryBirthDate      *time.Time     `gorm:"column:beneficiary_birth_date" json:"beneficiary_birth_date,omitempty"`
	BeneficiaryAddress        *string        `gorm:"column:beneficiary_address" json:"beneficiary_address,omitempty"`
	BeneficiaryNotes          *string        `gorm:"column:beneficiary_notes" json:"beneficiary_notes,omitempty"`
	BeneficiaryStatus         string         `gorm:"column:beneficiary_status;size:20;not null;default:'active'" json:"beneficiary_status"`
	CreatedAt                 time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                 time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt                 gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (BeneficiaryModel) TableName() string {
	return "beneficiaries"
}
