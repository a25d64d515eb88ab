package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	courseModel "sarai_backend/internals/features/courses/courses/model"
	"sarai_backend/internals/features/courses/enrollments/dto"
	enrollmentModel "sarai_backend/internals/features/courses/enrollments/model"
	"sarai_backend/internals/features/courses/enrollments/service"
	helper "sarai_backend/internals/helpers"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: validator.New()}
}

func (ctrl *EnrollmentController) courseInOrg(c *fiber.Ctx, courseIDRaw string) (*courseModel.CourseModel, error) {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return nil, err
	}
	courseID, err := uuid.Parse(courseIDRaw)
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_organization_id = ?", courseID, orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return &course, nil
}

// Enroll writes both enrollment signals up front so reconciliation has nothing
// to repair for the happy path.
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	course, err := ctrl.courseInOrg(c, c.Params("course_id"))
	if err != nil {
		return err
	}

	var body dto.EnrollDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	userID, _ := uuid.Parse(body.UserID)
	role := body.Role
	if role == "" {
		role = "student"
	}

	now := time.Now()
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		roleRow := enrollmentModel.UserCourseRoleModel{
			UserCourseRoleUserID:     userID,
			UserCourseRoleCourseID:   course.CourseID,
			UserCourseRoleRole:       role,
			UserCourseRoleIsActive:   true,
			UserCourseRoleAssignedAt: now,
			UserCourseRoleNote:       body.Note,
		}
		if err := tx.Create(&roleRow).Error; err != nil {
			return err
		}
		if role != "student" {
			return nil
		}
		progress := enrollmentModel.UserCourseProgressModel{
			UserCourseProgressUserID:           userID,
			UserCourseProgressCourseID:         course.CourseID,
			UserCourseProgressStatus:           "in_progress",
			UserCourseProgressCompletedModules: pq.StringArray{},
			UserCourseProgressStartedAt:        now,
			UserCourseProgressLastAccessedAt:   now,
		}
		return tx.Create(&progress).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "User is already enrolled in this course")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to enroll user")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrolled", nil)
}

// ListCourseEnrollments reconciles the two signals first, then returns the
// merged role × progress view.
func (ctrl *EnrollmentController) ListCourseEnrollments(c *fiber.Ctx) error {
	course, err := ctrl.courseInOrg(c, c.Params("course_id"))
	if err != nil {
		return err
	}

	service.ReconcileEnrollments(ctrl.DB, course.CourseID)

	var rows []dto.EnrollmentResponse
	err = ctrl.DB.Table("user_course_roles AS r").
		Select(`r.user_course_role_user_id AS user_id,
			u.user_full_name,
			r.user_course_role_role AS role,
			r.user_course_role_is_active AS is_active,
			COALESCE(p.user_course_progress_progress, 0) AS progress_percent,
			COALESCE(p.user_course_progress_status, '') AS status`).
		Joins("JOIN users u ON u.user_id = r.user_course_role_user_id").
		Joins(`LEFT JOIN user_course_progress p
			ON p.user_course_progress_user_id = r.user_course_role_user_id
			AND p.user_course_progress_course_id = r.user_course_role_course_id`).
		Where("r.user_course_role_course_id = ?", course.CourseID).
		Order("u.user_full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}
	return helper.Success(c, "OK", rows)
}

// ListMyCourses returns the caller's courses in the current organization with
// their own progress attached.
func (ctrl *EnrollmentController) ListMyCourses(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var courseIDs []uuid.UUID
	if err := ctrl.DB.Model(&enrollmentModel.UserCourseRoleModel{}).
		Joins("JOIN courses ON courses.course_id = user_course_role_course_id").
		Where("user_course_role_user_id = ? AND user_course_role_is_active AND courses.course_organization_id = ?", userID, orgID).
		Distinct().
		Pluck("user_course_role_course_id", &courseIDs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	for _, id := range courseIDs {
		service.ReconcileEnrollments(ctrl.DB, id)
	}

	type myCourseRow struct {
		courseModel.CourseModel
		Progress    int        `gorm:"column:progress" json:"progress"`
		Status      string     `gorm:"column:status" json:"status"`
		CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	}
	var rows []myCourseRow
	if len(courseIDs) > 0 {
		if err := ctrl.DB.Table("courses").
			Select(`courses.*,
				COALESCE(p.user_course_progress_progress, 0) AS progress,
				COALESCE(p.user_course_progress_status, 'in_progress') AS status,
				p.user_course_progress_completed_at AS completed_at`).
			Joins(`LEFT JOIN user_course_progress p
				ON p.user_course_progress_course_id = courses.course_id
				AND p.user_course_progress_user_id = ?`, userID).
			Where("courses.course_id IN ? AND courses.deleted_at IS NULL", courseIDs).
			Order("courses.course_name ASC").
			Scan(&rows).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
		}
	}
	return helper.Success(c, "OK", rows)
}

// MarkModuleComplete is idempotent per module; progress math lives in the
// service layer.
func (ctrl *EnrollmentController) MarkModuleComplete(c *fiber.Ctx) error {
	course, err := ctrl.courseInOrg(c, c.Params("course_id"))
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid module id")
	}

	progress, err := service.MarkModuleComplete(ctrl.DB, userID, course.CourseID, moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Module not found in this course")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update progress")
	}
	return helper.Success(c, "Module marked complete", progress)
}
