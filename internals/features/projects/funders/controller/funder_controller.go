package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarai_backend/internals/features/projects/funders/dto"
	funderModel "sarai_backend/internals/features/projects/funders/model"
	helper "sarai_backend/internals/helpers"
)

type FunderController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFunderController(db *gorm.DB) *FunderController {
	return &FunderController{DB: db, Validate: validator.New()}
}

func (ctrl *FunderController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var body dto.CreateFunderDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	row := funderModel.FunderModel{
		FunderOrganizationID: orgID,
		FunderName:           body.Name,
		FunderContactName:    body.ContactName,
		FunderContactEmail:   body.ContactEmail,
		FunderPhone:          body.Phone,
		FunderNotes:          body.Notes,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create funder")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Funder created", row)
}

func (ctrl *FunderController) GetAll(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&funderModel.FunderModel{}).
		Where("funder_organization_id = ?", orgID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count funders")
	}

	var rows []funderModel.FunderModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch funders")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(paging, total, len(rows)))
}

func (ctrl *FunderController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row funderModel.FunderModel
	if err := ctrl.DB.First(&row, "funder_id = ? AND funder_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Funder not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch funder")
	}
	return helper.Success(c, "OK", row)
}

func (ctrl *FunderController) Update(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row funderModel.FunderModel
	if err := ctrl.DB.First(&row, "funder_id = ? AND funder_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Funder not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch funder")
	}

	var body dto.UpdateFunderDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.Name != nil {
		row.FunderName = *body.Name
	}
	if body.ContactName != nil {
		row.FunderContactName = body.ContactName
	}
	if body.ContactEmail != nil {
		row.FunderContactEmail = body.ContactEmail
	}
	if body.Phone != nil {
		row.FunderPhone = body.Phone
	}
	if body.Notes != nil {
		row.FunderNotes = body.Notes
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update funder")
	}
	return helper.Success(c, "Funder updated", row)
}

func (ctrl *FunderController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("funder_id = ? AND funder_organization_id = ?", c.Params("id"), orgID).
		Delete(&funderModel.FunderModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete funder")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Funder not found")
	}
	return helper.Success(c, "Funder deleted", nil)
}
