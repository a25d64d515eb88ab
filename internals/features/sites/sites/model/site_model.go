package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SiteModel is the one whitelabel site an organization publishes under its
// subdomain.
type SiteModel struct {
	SiteID             uuid.UUID      `gorm:"column:site_id;type:uuid;default:gen_random_uuid();primaryKey" json:"site_id"`
	SiteOrganizationID uuid.UUID      `gorm:"column:site_organization_id;type:uuid;not null;uniqueIndex" json:"site_organization_id"`
	SiteSubdomain      string         `gorm:"column:site_subdomain;size:63;not null;uniqueIndex" json:"site_subdomain"`
	SiteTitle          string         `gorm:"column:site_title;size:150;not null" json:"site_title"`
	SiteTheme          datatypes.JSON `gorm:"column:site_theme;type:jsonb" json:"site_theme"`
	SiteLogoURL        string         `gorm:"column:site_logo_url;size:500" json:"site_logo_url,omitempty"`
	SiteFaviconURL     string         `gorm:"column:site_favicon_url;size:500" json:"site_favicon_url,omitempty"`
	SiteIsPublished    bool           `gorm:"column:site_is_published;not null;default:false" json:"site_is_published"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (SiteModel) TableName() string {
	return "sites"
}

type SitePageModel struct {
	SitePageID          uuid.UUID      `gorm:"column:site_page_id;type:uuid;default:gen_random_uuid();primaryKey" json:"site_page_id"`
	SitePageSiteID      uuid.UUID      `gorm:"column:site_page_site_id;type:uuid;not null;uniqueIndex:uq_site_pages_slug" json:"site_page_site_id"`
	SitePageSlug        string         `gorm:"column:site_page_slug;size:120;not null;uniqueIndex:uq_site_pages_slug" json:"site_page_slug"`
	SitePageTitle       string         `gorm:"column:site_page_title;size:150;not null" json:"site_page_title"`
	SitePageContent     datatypes.JSON `gorm:"column:site_page_content;type:jsonb" json:"site_page_content"`
	SitePageIsPublished bool           `gorm:"column:site_page_is_published;not null;default:false" json:"site_page_is_published"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (SitePageModel) TableName() string {
	return "site_pages"
}

type SiteMenuItemModel struct {
	SiteMenuItemID         uuid.UUID  `gorm:"column:site_menu_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"site_menu_item_id"`
	SiteMenuItemSiteID     uuid.UUID  `gorm:"column:site_menu_item_site_id;type:uuid;not null;index" json:"site_menu_item_site_id"`
	SiteMenuItemLabel      string     `gorm:"column:site_menu_item_label;size:80;not null" json:"site_menu_item_label"`
	SiteMenuItemOrderIndex int        `gorm:"column:site_menu_item_order_index;not null;default:0" json:"site_menu_item_order_index"`
	SiteMenuItemPageID     *uuid.UUID `gorm:"column:site_menu_item_page_id;type:uuid" json:"site_menu_item_page_id,omitempty"`
	SiteMenuItemURL        string     `gorm:"column:site_menu_item_url;size:500" json:"site_menu_item_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SiteMenuItemModel) TableName() string {
	return "site_menu_items"
}

// SiteFormModel describes a public form (contact, volunteer signup). Fields is
// the rendered field list; submissions land in SiteFormSubmissionModel.
type SiteFormModel struct {
	SiteFormID       uuid.UUID      `gorm:"column:site_form_id;type:uuid;default:gen_random_uuid();primaryKey" json:"site_form_id"`
	SiteFormSiteID   uuid.UUID      `gorm:"column:site_form_site_id;type:uuid;not null;index" json:"site_form_site_id"`
	SiteFormName     string         `gorm:"column:site_form_name;size:100;not null" json:"site_form_name"`
	SiteFormSlug     string         `gorm:"column:site_form_slug;size:120;not null;uniqueIndex" json:"site_form_slug"`
	SiteFormFields   datatypes.JSON `gorm:"column:site_form_fields;type:jsonb" json:"site_form_fields"`
	SiteFormIsActive bool           `gorm:"column:site_form_is_active;not null;default:true" json:"site_form_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (SiteFormModel) TableName() string {
	return "site_forms"
}

type SiteFormSubmissionModel struct {
	SiteFormSubmissionID     uuid.UUID      `gorm:"column:site_form_submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"site_form_submission_id"`
	SiteFormSubmissionFormID uuid.UUID      `gorm:"column:site_form_submission_form_id;type:uuid;not null;index" json:"site_form_submission_form_id"`
	SiteFormSubmissionData   datatypes.JSON `gorm:"column:site_form_submission_data;type:jsonb;not null" json:"site_form_submission_data"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SiteFormSubmissionModel) TableName() string {
	return "site_form_submissions"
}
