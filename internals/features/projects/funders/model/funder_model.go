package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FunderModel struct {
	FunderID             uuid.UUID      `gorm:"column:funder_id;type:uuid;default:gen_random_uuid();primaryKey" json:"funder_id"`
	FunderOrganizationID uuid.UUID      `gorm:"column:funder_organization_id;type:uuid;not null;index" json:"funder_organization_id"`
	FunderName           string         `gorm:"column:funder_name;size:150;not null" json:"funder_name"`
	FunderContactName    *string        `gorm:"column:funder_contact_name;size:100" json:"funder_contact_name,omitempty"`
	FunderContactEmail   *string        `gorm:"column:funder_contact_email;size:255" json:"funder_contact_email,omitempty"`
	FunderPhone          *string        `gorm:"column:funder_phone;size:30" json:"funder_phone,omitempty"`
	FunderNotes          *string        `gorm:"column:funder_notes" json:"funder_notes,omitempty"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (FunderModel) TableName() string {
	return "funders"
}
