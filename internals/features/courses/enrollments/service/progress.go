package service

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	courseModel "sarai_backend/internals/features/courses/courses/model"
	enrollmentModel "sarai_backend/internals/features/courses/enrollments/model"
)

// ComputeProgress maps k completed modules out of n to a rounded percentage.
// A course with zero modules stays at 0.
func ComputeProgress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// AddCompletedModule returns the set with moduleID added, plus whether the set
// actually changed. Re-marking an already completed module is a no-op on the
// set.
func AddCompletedModule(set pq.StringArray, moduleID uuid.UUID) (pq.StringArray, bool) {
	id := moduleID.String()
	for _, existing := range set {
		if existing == id {
			return set, false
		}
	}
	return append(set, id), true
}

// MarkModuleComplete records a finished module for the learner. Creates the
// progress row on first touch, is idempotent on the completed set (but always
// refreshes last_accessed_at), and transitions to "completed" with a
// completed_at stamp when progress reaches 100.
func MarkModuleComplete(db *gorm.DB, userID, courseID, moduleID uuid.UUID) (*enrollmentModel.UserCourseProgressModel, error) {
	var module courseModel.CourseModuleModel
	if err := db.First(&module, "course_module_id = ? AND course_module_course_id = ?", moduleID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}

	now := time.Now()
	var progress enrollmentModel.UserCourseProgressModel
	err := db.First(&progress, "user_course_progress_user_id = ? AND user_course_progress_course_id = ?", userID, courseID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		progress = enrollmentModel.UserCourseProgressModel{
			UserCourseProgressUserID:           userID,
			UserCourseProgressCourseID:         courseID,
			UserCourseProgressStatus:           "in_progress",
			UserCourseProgressCompletedModules: pq.StringArray{},
			UserCourseProgressStartedAt:        now,
			UserCourseProgressLastAccessedAt:   now,
		}
		if err := db.Create(&progress).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	updated, changed := AddCompletedModule(progress.UserCourseProgressCompletedModules, moduleID)
	progress.UserCourseProgressCompletedModules = updated
	progress.UserCourseProgressLastAccessedAt = now

	if changed {
		var totalModules int64
		if err := db.Model(&courseModel.CourseModuleModel{}).
			Where("course_module_course_id = ?", courseID).
			Count(&totalModules).Error; err != nil {
			return nil, err
		}
		progress.UserCourseProgressProgress = ComputeProgress(len(updated), int(totalModules))
		if progress.UserCourseProgressProgress >= 100 && progress.UserCourseProgressStatus != "completed" {
			progress.UserCourseProgressStatus = "completed"
			progress.UserCourseProgressCompletedAt = &now
		}
	}

	if err := db.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}
