package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseModel is organization-scoped. CourseType drives the certificate
// eligibility branch: in_person and hybrid courses are instructor-graded,
// online courses are graded from module form submissions.
type CourseModel struct {
	CourseID                 uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseOrganizationID     uuid.UUID `gorm:"column:course_organization_id;type:uuid;not null;index" json:"course_organization_id"`
	CourseName               string    `gorm:"column:course_name;size:150;not null" json:"course_name"`
	CourseSlug               string    `gorm:"column:course_slug;size:160;not null;uniqueIndex" json:"course_slug"`
	CourseDescription        string    `gorm:"column:course_description;type:text" json:"course_description"`
	CourseType               string    `gorm:"column:course_type;size:20;not null;default:'online'" json:"course_type"`
	CoursePassScore          float64   `gorm:"column:course_pass_score;not null;default:70" json:"course_pass_score"`
	CourseCertificateEnabled bool      `gorm:"column:course_certificate_enabled;not null;default:false" json:"course_certificate_enabled"`
	CourseIsPublished        bool      `gorm:"column:course_is_published;not null;default:false" json:"course_is_published"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}

// CourseModuleModel holds the ordered lesson content. Content is an array of
// content blocks; blocks with type "form" carry gradable fields.
type CourseModuleModel struct {
	CourseModuleID         uuid.UUID      `gorm:"column:course_module_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_module_id"`
	CourseModuleCourseID   uuid.UUID      `gorm:"column:course_module_course_id;type:uuid;not null;index" json:"course_module_course_id"`
	CourseModuleTitle      string         `gorm:"column:course_module_title;size:150;not null" json:"course_module_title"`
	CourseModuleOrderIndex int            `gorm:"column:course_module_order_index;not null;default:0" json:"course_module_order_index"`
	CourseModuleContent    datatypes.JSON `gorm:"column:course_module_content;type:jsonb" json:"course_module_content"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CourseModuleModel) TableName() string {
	return "course_modules"
}
