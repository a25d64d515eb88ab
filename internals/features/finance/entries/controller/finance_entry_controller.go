package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sarai_backend/internals/features/finance/entries/dto"
	entryModel "sarai_backend/internals/features/finance/entries/model"
	helper "sarai_backend/internals/helpers"
)

type FinanceEntryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFinanceEntryController(db *gorm.DB) *FinanceEntryController {
	return &FinanceEntryController{DB: db, Validate: validator.New()}
}

func (ctrl *FinanceEntryController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var body dto.CreateFinanceEntryDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var projectID *uuid.UUID
	if body.ProjectID != nil && *body.ProjectID != "" {
		if id, perr := uuid.Parse(*body.ProjectID); perr == nil {
			projectID = &id
		}
	}

	row := entryModel.FinanceEntryModel{
		FinanceEntryOrganizationID: orgID,
		FinanceEntryProjectID:      projectID,
		FinanceEntryDirection:      body.Direction,
		FinanceEntryDescription:    body.Description,
		FinanceEntryAmountCents:    body.AmountCents,
		FinanceEntryDueDate:        body.DueDate,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create entry")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Entry created", row)
}

func (ctrl *FinanceEntryController) GetAll(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&entryModel.FinanceEntryModel{}).
		Where("finance_entry_organization_id = ?", orgID)
	if d := c.Query("direction"); d != "" {
		q = q.Where("finance_entry_direction = ?", d)
	}
	if s := c.Query("status"); s != "" {
		q = q.Where("finance_entry_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count entries")
	}

	var rows []entryModel.FinanceEntryModel
	if err := q.Order("finance_entry_due_date ASC NULLS LAST, created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch entries")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(paging, total, len(rows)))
}

func (ctrl *FinanceEntryController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row entryModel.FinanceEntryModel
	if err := ctrl.DB.First(&row, "finance_entry_id = ? AND finance_entry_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Entry not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch entry")
	}
	return helper.Success(c, "OK", row)
}

func (ctrl *FinanceEntryController) Update(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row entryModel.FinanceEntryModel
	if err := ctrl.DB.First(&row, "finance_entry_id = ? AND finance_entry_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Entry not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch entry")
	}

	var body dto.UpdateFinanceEntryDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.Description != nil {
		row.FinanceEntryDescription = *body.Description
	}
	if body.AmountCents != nil {
		row.FinanceEntryAmountCents = *body.AmountCents
	}
	if body.DueDate != nil {
		row.FinanceEntryDueDate = body.DueDate
	}
	if body.Status != nil {
		row.FinanceEntryStatus = *body.Status
		if *body.Status == "paid" && row.FinanceEntryPaidAt == nil {
			now := time.Now()
			row.FinanceEntryPaidAt = &now
		}
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update entry")
	}
	return helper.Success(c, "Entry updated", row)
}

// MarkPaid is the shortcut the finance screen uses.
func (ctrl *FinanceEntryController) MarkPaid(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	now := time.Now()
	res := ctrl.DB.Model(&entryModel.FinanceEntryModel{}).
		Where("finance_entry_id = ? AND finance_entry_organization_id = ? AND finance_entry_status <> 'paid'", c.Params("id"), orgID).
		Updates(map[string]interface{}{
			"finance_entry_status":  "paid",
			"finance_entry_paid_at": now,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark entry paid")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Entry not found or already paid")
	}
	return helper.Success(c, "Entry marked paid", nil)
}

func (ctrl *FinanceEntryController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("finance_entry_id = ? AND finance_entry_organization_id = ?", c.Params("id"), orgID).
		Delete(&entryModel.FinanceEntryModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete entry")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Entry not found")
	}
	return helper.Success(c, "Entry deleted", nil)
}
