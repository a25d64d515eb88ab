package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonorModel struct {
	DonorID             uuid.UUID      `gorm:"column:donor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donor_id"`
	DonorOrganizationID uuid.UUID      `gorm:"column:donor_organization_id;type:uuid;not null;index" json:"donor_organization_id"`
	DonorType           string         `gorm:"column:donor_type;size:20;not null;default:'individual'" json:"donor_type"`
	DonorName           string         `gorm:"column:donor_name;size:100;not null" json:"donor_name"`
	DonorEmail          *string        `gorm:"column:donor_email;size:255" json:"donor_email,omitempty"`
	DonorPhone          *string        `gorm:"column:donor_phone;size:30" json:"donor_phone,omitempty"`
	DonorDocument       *string        `gorm:"column:donor_document;size:30" json:"donor_document,omitempty"`
	DonorNotes          *string        `gorm:"column:donor_notes" json:"donor_notes,omitempty"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (DonorModel) TableName() string {
	return "donors"
}
