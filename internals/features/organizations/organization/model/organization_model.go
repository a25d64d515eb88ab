package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationModel is the tenant boundary; every domain row carries its id.
// Organizations are never hard-deleted.
type OrganizationModel struct {
	OrganizationID                 uuid.UUID      `gorm:"column:organization_id;type:uuid;default:gen_random_uuid();primaryKey" json:"organization_id"`
	OrganizationName               string         `gorm:"column:organization_name;size:100;not null" json:"organization_name"`
	OrganizationSlug               string         `gorm:"column:organization_slug;size:100;unique;not null" json:"organization_slug"`
	OrganizationSubscriptionPlan   string         `gorm:"column:organization_subscription_plan;size:30;not null;default:'free'" json:"organization_subscription_plan"`
	OrganizationSubscriptionStatus string         `gorm:"column:organization_subscription_status;size:30;not null;default:'active'" json:"organization_subscription_status"`
	CreatedAt                      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt                      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
