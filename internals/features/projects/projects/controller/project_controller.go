package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	funderModel "sarai_backend/internals/features/projects/funders/model"
	"sarai_backend/internals/features/projects/projects/dto"
	projectModel "sarai_backend/internals/features/projects/projects/model"
	helper "sarai_backend/internals/helpers"
)

type ProjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db, Validate: validator.New()}
}

// resolveFunder checks the funder belongs to the same organization.
func (ctrl *ProjectController) resolveFunder(orgID uuid.UUID, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, errors.New("invalid funder id")
	}
	var count int64
	if err := ctrl.DB.Model(&funderModel.FunderModel{}).
		Where("funder_id = ? AND funder_organization_id = ?", id, orgID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.New("funder not found in this organization")
	}
	return &id, nil
}

func (ctrl *ProjectController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var body dto.CreateProjectDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	funderID, err := ctrl.resolveFunder(orgID, body.FunderID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	row := projectModel.ProjectModel{
		ProjectOrganizationID: orgID,
		ProjectFunderID:       funderID,
		ProjectName:           body.Name,
		ProjectDescription:    body.Description,
		ProjectStartDate:      body.StartDate,
		ProjectEndDate:        body.EndDate,
		ProjectBudgetCents:    body.BudgetCents,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create project")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Project created", row)
}

func (ctrl *ProjectController) GetAll(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&projectModel.ProjectModel{}).
		Where("project_organization_id = ?", orgID)
	if s := c.Query("status"); s != "" {
		q = q.Where("project_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count projects")
	}

	var rows []projectModel.ProjectModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch projects")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(paging, total, len(rows)))
}

func (ctrl *ProjectController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row projectModel.ProjectModel
	if err := ctrl.DB.First(&row, "project_id = ? AND project_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Project not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch project")
	}
	return helper.Success(c, "OK", row)
}

func (ctrl *ProjectController) Update(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row projectModel.ProjectModel
	if err := ctrl.DB.First(&row, "project_id = ? AND project_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Project not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch project")
	}

	var body dto.UpdateProjectDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.FunderID != nil {
		funderID, err := ctrl.resolveFunder(orgID, body.FunderID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		row.ProjectFunderID = funderID
	}
	if body.Name != nil {
		row.ProjectName = *body.Name
	}
	if body.Description != nil {
		row.ProjectDescription = body.Description
	}
	if body.Status != nil {
		row.ProjectStatus = *body.Status
	}
	if body.StartDate != nil {
		row.ProjectStartDate = body.StartDate
	}
	if body.EndDate != nil {
		row.ProjectEndDate = body.EndDate
	}
	if body.BudgetCents != nil {
		row.ProjectBudgetCents = *body.BudgetCents
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update project")
	}
	return helper.Success(c, "Project updated", row)
}

func (ctrl *ProjectController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("project_id = ? AND project_organization_id = ?", c.Params("id"), orgID).
		Delete(&projectModel.ProjectModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete project")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Project not found")
	}
	return helper.Success(c, "Project deleted", nil)
}
