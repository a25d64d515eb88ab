package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserCourseProgressModel is one of the two enrollment signals (the other is
// UserCourseRoleModel). The unique index on (user_id, course_id) is the real
// race guard for concurrent reconciliation inserts.
type UserCourseProgressModel struct {
	UserCourseProgressID                   uuid.UUID      `gorm:"column:user_course_progress_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_course_progress_id"`
	UserCourseProgressUserID               uuid.UUID      `gorm:"column:user_course_progress_user_id;type:uuid;not null;uniqueIndex:uq_user_course_progress" json:"user_course_progress_user_id"`
	UserCourseProgressCourseID             uuid.UUID      `gorm:"column:user_course_progress_course_id;type:uuid;not null;uniqueIndex:uq_user_course_progress;index" json:"user_course_progress_course_id"`
	UserCourseProgressStatus               string         `gorm:"column:user_course_progress_status;size:20;not null;default:'in_progress'" json:"user_course_progress_status"`
	UserCourseProgressProgress             int            `gorm:"column:user_course_progress_progress;not null;default:0" json:"user_course_progress_progress"`
	UserCourseProgressCompletedModules     pq.StringArray `gorm:"column:user_course_progress_completed_modules;type:uuid[]" json:"user_course_progress_completed_modules"`
	UserCourseProgressStartedAt            time.Time      `gorm:"column:user_course_progress_started_at;not null" json:"user_course_progress_started_at"`
	UserCourseProgressLastAccessedAt       time.Time      `gorm:"column:user_course_progress_last_accessed_at;not null" json:"user_course_progress_last_accessed_at"`
	UserCourseProgressCompletedAt          *time.Time     `gorm:"column:user_course_progress_completed_at" json:"user_course_progress_completed_at,omitempty"`
	UserCourseProgressCertificateGenerated bool           `gorm:"column:user_course_progress_certificate_generated;not null;default:false" json:"user_course_progress_certificate_generated"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserCourseProgressModel) TableName() string {
	return "user_course_progress"
}

// UserCourseRoleModel is the role-based enrollment signal.
//
// Migration note: a partial unique index backs the one-active-student rule,
//
//	CREATE UNIQUE INDEX uq_user_course_roles_active_student
//	ON user_course_roles (user_course_role_user_id, user_course_role_course_id)
//	WHERE user_course_role_is_active AND user_course_role_role = 'student';
type UserCourseRoleModel struct {
	UserCourseRoleID         uuid.UUID `gorm:"column:user_course_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_course_role_id"`
	UserCourseRoleUserID     uuid.UUID `gorm:"column:user_course_role_user_id;type:uuid;not null;index" json:"user_course_role_user_id"`
	UserCourseRoleCourseID   uuid.UUID `gorm:"column:user_course_role_course_id;type:uuid;not null;index" json:"user_course_role_course_id"`
	UserCourseRoleRole       string    `gorm:"column:user_course_role_role;size:20;not null;default:'student'" json:"user_course_role_role"`
	UserCourseRoleIsActive   bool      `gorm:"column:user_course_role_is_active;not null;default:true" json:"user_course_role_is_active"`
	UserCourseRoleAssignedAt time.Time `gorm:"column:user_course_role_assigned_at;not null" json:"user_course_role_assigned_at"`
	UserCourseRoleNote       string    `gorm:"column:user_course_role_note;size:255" json:"user_course_role_note,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserCourseRoleModel) TableName() string {
	return "user_course_roles"
}
