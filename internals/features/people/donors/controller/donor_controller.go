package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarai_backend/internals/features/people/donors/dto"
	donorModel "sarai_backend/internals/features/people/donors/model"
	helper "sarai_backend/internals/helpers"
)

type DonorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDonorController(db *gorm.DB) *DonorController {
	return &DonorController{DB: db, Validate: validator.New()}
}

func (ctrl *DonorController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var body dto.CreateDonorDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	row := donorModel.DonorModel{
		DonorOrganizationID: orgID,
		DonorType:           body.Type,
		DonorName:           body.Name,
		DonorEmail:          body.Email,
		DonorPhone:          body.Phone,
		DonorDocument:       body.Document,
		DonorNotes:          body.Notes,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create donor")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donor created", row)
}

func (ctrl *DonorController) GetAll(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&donorModel.DonorModel{}).
		Where("donor_organization_id = ?", orgID)
	if t := c.Query("type"); t != "" {
		q = q.Where("donor_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count donors")
	}

	var rows []donorModel.DonorModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donors")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(paging, total, len(rows)))
}

func (ctrl *DonorController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row donorModel.DonorModel
	if err := ctrl.DB.First(&row, "donor_id = ? AND donor_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donor not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donor")
	}
	return helper.Success(c, "OK", row)
}

func (ctrl *DonorController) Update(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row donorModel.DonorModel
	if err := ctrl.DB.First(&row, "donor_id = ? AND donor_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donor not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donor")
	}

	var body dto.UpdateDonorDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.Type != nil {
		row.DonorType = *body.Type
	}
	if body.Name != nil {
		row.DonorName = *body.Name
	}
	if body.Email != nil {
		row.DonorEmail = body.Email
	}
	if body.Phone != nil {
		row.DonorPhone = body.Phone
	}
	if body.Document != nil {
		row.DonorDocument = body.Document
	}
	if body.Notes != nil {
		row.DonorNotes = body.Notes
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update donor")
	}
	return helper.Success(c, "Donor updated", row)
}

func (ctrl *DonorController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("donor_id = ? AND donor_organization_id = ?", c.Params("id"), orgID).
		Delete(&donorModel.DonorModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete donor")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Donor not found")
	}
	return helper.Success(c, "Donor deleted", nil)
}
