package service

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "sarai_backend/internals/features/courses/courses/model"
	gradingModel "sarai_backend/internals/features/courses/grading/model"
)

var ErrModuleNotFound = errors.New("module not found")

// SubmissionResult bundles the stored submission with the derived grade view.
type SubmissionResult struct {
	Submission gradingModel.UserModuleFormSubmissionModel `json:"submission"`
	Percentage float64                                    `json:"percentage"`
	GradeScale float64                                    `json:"grade_scale"`
	Results    []FieldResult                              `json:"detailed_results"`
}

// SubmitModuleForm grades the answers against the module's form fields, stores
// the submission (resubmitting overwrites the previous attempt) and upserts
// the module-level grade.
func SubmitModuleForm(db *gorm.DB, userID, moduleID uuid.UUID, answers map[string]interface{}) (*SubmissionResult, error) {
	var module courseModel.CourseModuleModel
	if err := db.First(&module, "course_module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}

	fields, err := ExtractFormFields(module.CourseModuleContent)
	if err != nil {
		return nil, err
	}

	score := ScoreForm(fields, answers)

	answersJSON, err := sonic.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	resultsJSON, err := sonic.Marshal(score.Results)
	if err != nil {
		return nil, fmt.Errorf("encode results: %w", err)
	}

	submission := gradingModel.UserModuleFormSubmissionModel{
		UserModuleFormSubmissionUserID:          userID,
		UserModuleFormSubmissionModuleID:        moduleID,
		UserModuleFormSubmissionAnswers:         datatypes.JSON(answersJSON),
		UserModuleFormSubmissionScore:           score.Score,
		UserModuleFormSubmissionMaxScore:        score.MaxScore,
		UserModuleFormSubmissionPassed:          score.Passed,
		UserModuleFormSubmissionDetailedResults: datatypes.JSON(resultsJSON),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_module_form_submission_user_id"},
				{Name: "user_module_form_submission_module_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_module_form_submission_answers",
				"user_module_form_submission_score",
				"user_module_form_submission_max_score",
				"user_module_form_submission_passed",
				"user_module_form_submission_detailed_results",
				"updated_at",
			}),
		}).Create(&submission).Error; err != nil {
			return err
		}
		return UpsertGrade(tx, gradingModel.UserGradeModel{
			UserGradeUserID:   userID,
			UserGradeCourseID: module.CourseModuleCourseID,
			UserGradeModuleID: &moduleID,
			UserGradeType:     "module",
			UserGradeScale:    score.GradeScale,
			UserGradePassed:   score.Passed,
		})
	})
	if err != nil {
		return nil, err
	}

	return &SubmissionResult{
		Submission: submission,
		Percentage: score.Percentage,
		GradeScale: score.GradeScale,
		Results:    score.Results,
	}, nil
}

// UpsertGrade overwrites any prior grade of the same (user, course, module,
// type) tuple. Course and final grades carry a NULL module id, and NULLs never
// conflict on the unique index, so those take the lookup path.
func UpsertGrade(db *gorm.DB, grade gradingModel.UserGradeModel) error {
	if grade.UserGradeModuleID == nil {
		var existing gradingModel.UserGradeModel
		err := db.Where(
			"user_grade_user_id = ? AND user_grade_course_id = ? AND user_grade_module_id IS NULL AND user_grade_type = ?",
			grade.UserGradeUserID, grade.UserGradeCourseID, grade.UserGradeType,
		).First(&existing).Error
		if err == nil {
			return db.Model(&existing).Updates(map[string]interface{}{
				"user_grade_scale":        grade.UserGradeScale,
				"user_grade_passed":       grade.UserGradePassed,
				"user_grade_feedback":     grade.UserGradeFeedback,
				"user_grade_graded_by_id": grade.UserGradeGradedByID,
			}).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return db.Create(&grade).Error
	}

	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_grade_user_id"},
			{Name: "user_grade_course_id"},
			{Name: "user_grade_module_id"},
			{Name: "user_grade_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_grade_scale",
			"user_grade_passed",
			"user_grade_feedback",
			"user_grade_graded_by_id",
			"updated_at",
		}),
	}).Create(&grade).Error
}
