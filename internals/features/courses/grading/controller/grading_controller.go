package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "sarai_backend/internals/features/courses/courses/model"
	"sarai_backend/internals/features/courses/grading/dto"
	gradingModel "sarai_backend/internals/features/courses/grading/model"
	"sarai_backend/internals/features/courses/grading/service"
	helper "sarai_backend/internals/helpers"
)

type GradingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGradingController(db *gorm.DB) *GradingController {
	return &GradingController{DB: db, Validate: validator.New()}
}

// SubmitForm grades the caller's answers to a module's embedded form.
func (ctrl *GradingController) SubmitForm(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid module id")
	}

	var body dto.SubmitFormDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.SubmitModuleForm(ctrl.DB, userID, moduleID, body.Answers)
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Module not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to grade submission")
	}
	return helper.Success(c, "Submission graded", result)
}

// GetMySubmission returns the caller's stored attempt for a module.
func (ctrl *GradingController) GetMySubmission(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid module id")
	}

	var row gradingModel.UserModuleFormSubmissionModel
	if err := ctrl.DB.First(&row,
		"user_module_form_submission_user_id = ? AND user_module_form_submission_module_id = ?",
		userID, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "No submission yet")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submission")
	}
	return helper.Success(c, "OK", row)
}

// EnterGrade lets an instructor record a course-level or final grade. This is
// what the certificate check reads for in-person and hybrid courses.
func (ctrl *GradingController) EnterGrade(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	graderID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_organization_id = ?", courseID, orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	var body dto.EnterGradeDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	userID, _ := uuid.Parse(body.UserID)

	grade := gradingModel.UserGradeModel{
		UserGradeUserID:     userID,
		UserGradeCourseID:   courseID,
		UserGradeType:       body.GradeType,
		UserGradeScale:      body.GradeScale,
		UserGradePassed:     body.Passed,
		UserGradeFeedback:   body.Feedback,
		UserGradeGradedByID: &graderID,
	}
	if err := service.UpsertGrade(ctrl.DB, grade); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save grade")
	}
	return helper.Success(c, "Grade saved", grade)
}

// ListCourseGrades returns every grade row for a course, for the instructor
// view.
func (ctrl *GradingController) ListCourseGrades(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var rows []gradingModel.UserGradeModel
	if err := ctrl.DB.
		Joins("JOIN courses ON courses.course_id = user_grade_course_id").
		Where("user_grade_course_id = ? AND courses.course_organization_id = ?", c.Params("course_id"), orgID).
		Order("user_grade_type ASC, updated_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}
	return helper.Success(c, "OK", rows)
}
