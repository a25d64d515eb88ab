package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	enrollmentModel "sarai_backend/internals/features/courses/enrollments/model"
)

// EnrollmentDiff names the repairs reconciliation has to make: users enrolled
// through one signal but missing from the other.
type EnrollmentDiff struct {
	// MissingRole: users with a progress row but no active student role.
	MissingRole []uuid.UUID
	// MissingProgress: users with an active student role but no progress row.
	MissingProgress []uuid.UUID
}

// DiffEnrollments computes both repair directions from the two user-id sets.
// Pure so the convergence properties can be tested without a database.
func DiffEnrollments(progressUsers, activeStudentUsers []uuid.UUID) EnrollmentDiff {
	progressSet := make(map[uuid.UUID]struct{}, len(progressUsers))
	for _, id := range progressUsers {
		progressSet[id] = struct{}{}
	}
	roleSet := make(map[uuid.UUID]struct{}, len(activeStudentUsers))
	for _, id := range activeStudentUsers {
		roleSet[id] = struct{}{}
	}

	var diff EnrollmentDiff
	for _, id := range progressUsers {
		if _, ok := roleSet[id]; !ok {
			diff.MissingRole = append(diff.MissingRole, id)
		}
	}
	for _, id := range activeStudentUsers {
		if _, ok := progressSet[id]; !ok {
			diff.MissingProgress = append(diff.MissingProgress, id)
		}
	}
	return diff
}

// ReconcileEnrollments repairs the two enrollment signals for a course so that
// every user with a progress row has an active student role and vice versa.
// Inserts are best-effort: a failed insert (including a unique-constraint hit
// from a concurrent reconcile) is logged and skipped, never surfaced to the
// caller. Called lazily before enrollment listings.
func ReconcileEnrollments(db *gorm.DB, courseID uuid.UUID) {
	type progressRow struct {
		UserID    uuid.UUID `gorm:"column:user_course_progress_user_id"`
		CreatedAt time.Time `gorm:"column:created_at"`
	}
	var progressRows []progressRow
	if err := db.Model(&enrollmentModel.UserCourseProgressModel{}).
		Where("user_course_progress_course_id = ?", courseID).
		Select("user_course_progress_user_id", "created_at").
		Scan(&progressRows).Error; err != nil {
		log.Println("[ERROR] reconcile: load progress rows:", err)
		return
	}

	var roleUsers []uuid.UUID
	if err := db.Model(&enrollmentModel.UserCourseRoleModel{}).
		Where("user_course_role_course_id = ? AND user_course_role_role = 'student' AND user_course_role_is_active", courseID).
		Pluck("user_course_role_user_id", &roleUsers).Error; err != nil {
		log.Println("[ERROR] reconcile: load role rows:", err)
		return
	}

	progressUsers := make([]uuid.UUID, 0, len(progressRows))
	progressCreated := make(map[uuid.UUID]time.Time, len(progressRows))
	for _, r := range progressRows {
		progressUsers = append(progressUsers, r.UserID)
		progressCreated[r.UserID] = r.CreatedAt
	}

	diff := DiffEnrollments(progressUsers, roleUsers)

	for _, userID := range diff.MissingRole {
		row := enrollmentModel.UserCourseRoleModel{
			UserCourseRoleUserID:     userID,
			UserCourseRoleCourseID:   courseID,
			UserCourseRoleRole:       "student",
			UserCourseRoleIsActive:   true,
			UserCourseRoleAssignedAt: progressCreated[userID],
			UserCourseRoleNote:       "backfilled from progress record",
		}
		if err := db.Create(&row).Error; err != nil {
			log.Println("[ERROR] reconcile: insert role for", userID, ":", err)
		}
	}

	now := time.Now()
	for _, userID := range diff.MissingProgress {
		row := enrollmentModel.UserCourseProgressModel{
			UserCourseProgressUserID:           userID,
			UserCourseProgressCourseID:         courseID,
			UserCourseProgressStatus:           "in_progress",
			UserCourseProgressProgress:         0,
			UserCourseProgressCompletedModules: pq.StringArray{},
			UserCourseProgressStartedAt:        now,
			UserCourseProgressLastAccessedAt:   now,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Println("[ERROR] reconcile: insert progress for", userID, ":", err)
		}
	}
}
