package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModuleFormSubmissionModel stores one graded attempt per (user, module).
// The unique index keeps a concurrent double submit from duplicating rows.
type UserModuleFormSubmissionModel struct {
	UserModuleFormSubmissionID              uuid.UUID      `gorm:"column:user_module_form_submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_module_form_submission_id"`
	UserModuleFormSubmissionUserID          uuid.UUID      `gorm:"column:user_module_form_submission_user_id;type:uuid;not null;uniqueIndex:uq_user_module_form_submission" json:"user_module_form_submission_user_id"`
	UserModuleFormSubmissionModuleID        uuid.UUID      `gorm:"column:user_module_form_submission_module_id;type:uuid;not null;uniqueIndex:uq_user_module_form_submission;index" json:"user_module_form_submission_module_id"`
	UserModuleFormSubmissionAnswers         datatypes.JSON `gorm:"column:user_module_form_submission_answers;type:jsonb" json:"user_module_form_submission_answers"`
	UserModuleFormSubmissionScore           float64        `gorm:"column:user_module_form_submission_score;not null" json:"user_module_form_submission_score"`
	UserModuleFormSubmissionMaxScore        float64        `gorm:"column:user_module_form_submission_max_score;not null" json:"user_module_form_submission_max_score"`
	UserModuleFormSubmissionPassed          bool           `gorm:"column:user_module_form_submission_passed;not null" json:"user_module_form_submission_passed"`
	UserModuleFormSubmissionDetailedResults datatypes.JSON `gorm:"column:user_module_form_submission_detailed_results;type:jsonb" json:"user_module_form_submission_detailed_results"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModuleFormSubmissionModel) TableName() string {
	return "user_module_form_submissions"
}

// UserGradeModel holds module, course and final grades on a 1.0 to 10.0 scale.
type UserGradeModel struct {
	UserGradeID         uuid.UUID  `gorm:"column:user_grade_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_grade_id"`
	UserGradeUserID     uuid.UUID  `gorm:"column:user_grade_user_id;type:uuid;not null;uniqueIndex:uq_user_grades" json:"user_grade_user_id"`
	UserGradeCourseID   uuid.UUID  `gorm:"column:user_grade_course_id;type:uuid;not null;uniqueIndex:uq_user_grades;index" json:"user_grade_course_id"`
	UserGradeModuleID   *uuid.UUID `gorm:"column:user_grade_module_id;type:uuid;uniqueIndex:uq_user_grades" json:"user_grade_module_id,omitempty"`
	UserGradeType       string     `gorm:"column:user_grade_type;size:10;not null;uniqueIndex:uq_user_grades" json:"user_grade_type"`
	UserGradeScale      float64    `gorm:"column:user_grade_scale;not null;check:user_grade_scale >= 1.0 AND user_grade_scale <= 10.0" json:"user_grade_scale"`
	UserGradePassed     bool       `gorm:"column:user_grade_passed;not null" json:"user_grade_passed"`
	UserGradeFeedback   string     `gorm:"column:user_grade_feedback;size:500" json:"user_grade_feedback,omitempty"`
	UserGradeGradedByID *uuid.UUID `gorm:"column:user_grade_graded_by_id;type:uuid" json:"user_grade_graded_by_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserGradeModel) TableName() string {
	return "user_grades"
}
