package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	certificateModel "sarai_backend/internals/features/courses/certificates/model"
	courseModel "sarai_backend/internals/features/courses/courses/model"
	gradingModel "sarai_backend/internals/features/courses/grading/model"
	gradingService "sarai_backend/internals/features/courses/grading/service"
)

var ErrCourseNotFound = errors.New("course not found")

const reasonAlreadyIssued = "certificate already issued"

// Eligibility is the certificate decision. Reason strings are part of the API
// contract and shown to end users as-is.
type Eligibility struct {
	Eligible          bool                   `json:"eligible"`
	Reason            string                 `json:"reason,omitempty"`
	CompletionSummary map[string]interface{} `json:"completion_summary,omitempty"`
}

// ModuleScore is one graded form submission feeding the online aggregate.
type ModuleScore struct {
	Score    float64
	MaxScore float64
}

// EvaluateIssued maps the number of certificates already held for a
// (user, course) pair onto the single-issue precondition. Nil means the check
// passes and the branch evaluation may proceed.
func EvaluateIssued(issued int64) *Eligibility {
	if issued > 0 {
		return &Eligibility{Eligible: false, Reason: reasonAlreadyIssued}
	}
	return nil
}

// EvaluateInstructorGrade decides the in-person/hybrid branch from the
// course-level grade an instructor entered (nil when none exists yet).
func EvaluateInstructorGrade(grade *gradingModel.UserGradeModel) Eligibility {
	if grade == nil {
		return Eligibility{Eligible: false, Reason: "awaiting grade"}
	}
	summary := map[string]interface{}{
		"type":        "instructor_graded",
		"grade_scale": grade.UserGradeScale,
		"passed":      grade.UserGradePassed,
		"feedback":    grade.UserGradeFeedback,
	}
	if grade.UserGradeGradedByID != nil {
		summary["graded_by"] = grade.UserGradeGradedByID.String()
	}
	if !grade.UserGradePassed {
		return Eligibility{
			Eligible:          false,
			Reason:            fmt.Sprintf("grade %.1f/10 below pass score", grade.UserGradeScale),
			CompletionSummary: summary,
		}
	}
	return Eligibility{Eligible: true, CompletionSummary: summary}
}

// EvaluateOnlineAggregate decides the online branch: every form-bearing module
// must have a submission, and the summed score ratio must reach the course
// pass score. Modules without forms are exempt from the gate.
func EvaluateOnlineAggregate(passScore float64, formModules int, scores []ModuleScore) Eligibility {
	if formModules == 0 {
		return Eligibility{Eligible: false, Reason: "no gradable content"}
	}
	if len(scores) < formModules {
		return Eligibility{
			Eligible: false,
			Reason:   fmt.Sprintf("%d of %d gradable modules not yet submitted", formModules-len(scores), formModules),
		}
	}

	var totalScore, totalMax float64
	for _, s := range scores {
		totalScore += s.Score
		totalMax += s.MaxScore
	}
	if totalMax == 0 {
		return Eligibility{Eligible: false, Reason: "no gradable content"}
	}

	percentage := totalScore / totalMax * 100
	summary := map[string]interface{}{
		"type":               "aggregated_module_scores",
		"total_score":        totalScore,
		"total_max_score":    totalMax,
		"overall_percentage": percentage,
		"modules_graded":     len(scores),
		"modules_required":   formModules,
	}
	if percentage < passScore {
		return Eligibility{
			Eligible:          false,
			Reason:            fmt.Sprintf("grade insufficient: overall score %.0f%% is below the required %.0f%%", percentage, passScore),
			CompletionSummary: summary,
		}
	}
	return Eligibility{Eligible: true, CompletionSummary: summary}
}

// CheckEligibility runs the ordered preconditions and then branches on the
// course delivery type.
func CheckEligibility(db *gorm.DB, userID, courseID uuid.UUID) (Eligibility, error) {
	var course courseModel.CourseModel
	if err := db.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Eligibility{}, ErrCourseNotFound
		}
		return Eligibility{}, err
	}
	return checkEligibilityForCourse(db, userID, &course)
}

func checkEligibilityForCourse(db *gorm.DB, userID uuid.UUID, course *courseModel.CourseModel) (Eligibility, error) {
	if !course.CourseCertificateEnabled {
		return Eligibility{Eligible: false, Reason: "certificates are not enabled for this course"}, nil
	}

	var issued int64
	if err := db.Model(&certificateModel.CertificateModel{}).
		Where("certificate_user_id = ? AND certificate_course_id = ?", userID, course.CourseID).
		Count(&issued).Error; err != nil {
		return Eligibility{}, err
	}
	if blocked := EvaluateIssued(issued); blocked != nil {
		return *blocked, nil
	}

	if course.CourseType == "in_person" || course.CourseType == "hybrid" {
		var grade gradingModel.UserGradeModel
		err := db.Where("user_grade_user_id = ? AND user_grade_course_id = ? AND user_grade_type IN ('final', 'course')", userID, course.CourseID).
			Order("CASE user_grade_type WHEN 'final' THEN 0 ELSE 1 END").
			First(&grade).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EvaluateInstructorGrade(nil), nil
		}
		if err != nil {
			return Eligibility{}, err
		}
		return EvaluateInstructorGrade(&grade), nil
	}

	// online branch
	var modules []courseModel.CourseModuleModel
	if err := db.Where("course_module_course_id = ?", course.CourseID).Find(&modules).Error; err != nil {
		return Eligibility{}, err
	}

	var formModuleIDs []uuid.UUID
	for _, m := range modules {
		if gradingService.HasFormBlock(m.CourseModuleContent) {
			formModuleIDs = append(formModuleIDs, m.CourseModuleID)
		}
	}
	if len(formModuleIDs) == 0 {
		return EvaluateOnlineAggregate(course.CoursePassScore, 0, nil), nil
	}

	var submissions []gradingModel.UserModuleFormSubmissionModel
	if err := db.Where("user_module_form_submission_user_id = ? AND user_module_form_submission_module_id IN ?", userID, formModuleIDs).
		Find(&submissions).Error; err != nil {
		return Eligibility{}, err
	}

	scores := make([]ModuleScore, 0, len(submissions))
	for _, s := range submissions {
		scores = append(scores, ModuleScore{
			Score:    s.UserModuleFormSubmissionScore,
			MaxScore: s.UserModuleFormSubmissionMaxScore,
		})
	}
	return EvaluateOnlineAggregate(course.CoursePassScore, len(formModuleIDs), scores), nil
}
