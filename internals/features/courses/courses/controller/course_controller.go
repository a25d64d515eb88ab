package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarai_backend/internals/features/courses/courses/dto"
	courseModel "sarai_backend/internals/features/courses/courses/model"
	helper "sarai_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var body dto.CreateCourseDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlug(ctrl.DB, helper.Slugify(body.Name, 100), "courses", "course_slug")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	passScore := body.PassScore
	if passScore == 0 {
		passScore = 70
	}

	row := courseModel.CourseModel{
		CourseOrganizationID:     orgID,
		CourseName:               body.Name,
		CourseSlug:               slug,
		CourseDescription:        body.Description,
		CourseType:               body.Type,
		CoursePassScore:          passScore,
		CourseCertificateEnabled: body.CertificateEnabled,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", row)
}

func (ctrl *CourseController) GetAll(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&courseModel.CourseModel{}).
		Where("course_organization_id = ?", orgID)
	if t := c.Query("type"); t != "" {
		q = q.Where("course_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []courseModel.CourseModel
	if err := q.Order("course_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(paging, total, len(rows)))
}

func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row courseModel.CourseModel
	if err := ctrl.DB.First(&row, "course_id = ? AND course_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	var modules []courseModel.CourseModuleModel
	if err := ctrl.DB.Where("course_module_course_id = ?", row.CourseID).
		Order("course_module_order_index ASC").
		Find(&modules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch modules")
	}

	return helper.Success(c, "OK", fiber.Map{
		"course":  row,
		"modules": modules,
	})
}

func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row courseModel.CourseModel
	if err := ctrl.DB.First(&row, "course_id = ? AND course_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	var body dto.UpdateCourseDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.Name != nil {
		row.CourseName = *body.Name
	}
	if body.Description != nil {
		row.CourseDescription = *body.Description
	}
	if body.Type != nil {
		row.CourseType = *body.Type
	}
	if body.PassScore != nil {
		row.CoursePassScore = *body.PassScore
	}
	if body.CertificateEnabled != nil {
		row.CourseCertificateEnabled = *body.CertificateEnabled
	}
	if body.IsPublished != nil {
		row.CourseIsPublished = *body.IsPublished
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.Success(c, "Course updated", row)
}

func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("course_id = ? AND course_organization_id = ?", c.Params("id"), orgID).
		Delete(&courseModel.CourseModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.Success(c, "Course deleted", nil)
}

func (ctrl *CourseController) findCourse(c *fiber.Ctx) (*courseModel.CourseModel, error) {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return nil, err
	}
	var row courseModel.CourseModel
	if err := ctrl.DB.First(&row, "course_id = ? AND course_organization_id = ?", c.Params("course_id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return &row, nil
}

func (ctrl *CourseController) CreateModule(c *fiber.Ctx) error {
	course, err := ctrl.findCourse(c)
	if err != nil {
		return err
	}

	var body dto.CreateCourseModuleDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	row := courseModel.CourseModuleModel{
		CourseModuleCourseID:   course.CourseID,
		CourseModuleTitle:      body.Title,
		CourseModuleOrderIndex: body.OrderIndex,
		CourseModuleContent:    body.Content,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create module")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Module created", row)
}

func (ctrl *CourseController) UpdateModule(c *fiber.Ctx) error {
	course, err := ctrl.findCourse(c)
	if err != nil {
		return err
	}

	var row courseModel.CourseModuleModel
	if err := ctrl.DB.First(&row, "course_module_id = ? AND course_module_course_id = ?", c.Params("module_id"), course.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Module not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch module")
	}

	var body dto.UpdateCourseModuleDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.Title != nil {
		row.CourseModuleTitle = *body.Title
	}
	if body.OrderIndex != nil {
		row.CourseModuleOrderIndex = *body.OrderIndex
	}
	if body.Content != nil {
		row.CourseModuleContent = body.Content
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update module")
	}
	return helper.Success(c, "Module updated", row)
}

func (ctrl *CourseController) DeleteModule(c *fiber.Ctx) error {
	course, err := ctrl.findCourse(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("course_module_id = ? AND course_module_course_id = ?", c.Params("module_id"), course.CourseID).
		Delete(&courseModel.CourseModuleModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete module")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Module not found")
	}
	return helper.Success(c, "Module deleted", nil)
}
