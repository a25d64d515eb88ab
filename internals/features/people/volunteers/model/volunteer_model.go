package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type VolunteerModel struct {
	VolunteerID             uuid.UUID      `gorm:"column:volunteer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"volunteer_id"`
	VolunteerOrganizationID uuid.UUID      `gorm:"column:volunteer_organization_id;type:uuid;not null;index" json:"volunteer_organization_id"`
	VolunteerUserID         *uuid.UUID     `gorm:"column:volunteer_user_id;type:uuid" json:"volunteer_user_id,omitempty"`
	VolunteerFullName       string         `gorm:"column:volunteer_full_name;size:100;not null" json:"volunteer_full_name"`
	VolunteerEmail          *string        `gorm:"column:volunteer_email;size:255" json:"volunteer_email,omitempty"`
	VolunteerPhone          *string        `gorm:"column:volunteer_phone;size:30" json:"volunteer_phone,omitempty"`
	VolunteerSkills         pq.StringArray `gorm:"column:volunteer_skills;type:text[]" json:"volunteer_skills,omitempty"`
	VolunteerAvailability   *string        `gorm:"column:volunteer_availability;size:50" json:"volunteer_availability,omitempty"`
	VolunteerStatus         string         `gorm:"column:volunteer_status;size:20;not null;default:'active'" json:"volunteer_status"`
	CreatedAt               time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (VolunteerModel) TableName() string {
	return "volunteers"
}
