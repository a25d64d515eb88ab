package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectModel struct {
	ProjectID             uuid.UUID      `gorm:"column:project_id;type:uuid;default:gen_random_uuid();primaryKey" json:"project_id"`
	ProjectOrganizationID uuid.UUID      `gorm:"column:project_organization_id;type:uuid;not null;index" json:"project_organization_id"`
	ProjectFunderID       *uuid.UUID     `gorm:"column:project_funder_id;type:uuid" json:"project_funder_id,omitempty"`
	ProjectName           string         `gorm:"column:project_name;size:150;not null" json:"project_name"`
	ProjectDescription    *string        `gorm:"column:project_description" json:"project_description,omitempty"`
	ProjectStatus         string         `gorm:"column:project_status;size:20;not null;default:'planning'" json:"project_status"`
	ProjectStartDate      *time.Time     `gorm:"column:project_start_date" json:"project_start_date,omitempty"`
	ProjectEndDate        *time.Time     `gorm:"column:project_end_date" json:"project_end_date,omitempty"`
	ProjectBudgetCents    int64          `gorm:"column:project_budget_cents;not null;default:0" json:"project_budget_cents"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ProjectModel) TableName() string {
	return "projects"
}
