package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sarai_backend/internals/features/donations/donations/dto"
	donationModel "sarai_backend/internals/features/donations/donations/model"
	"sarai_backend/internals/features/donations/donations/service"
	helper "sarai_backend/internals/helpers"
)

type DonationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db, Validate: validator.New()}
}

func parseOptionalUUID(raw *string) *uuid.UUID {
	if raw == nil || *raw == "" {
		return nil
	}
	if id, err := uuid.Parse(*raw); err == nil {
		return &id
	}
	return nil
}

// Create records a donation. Online donations get a midtrans Snap token and
// stay pending until the webhook settles them; offline ones are paid now.
func (ctrl *DonationController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var body dto.CreateDonationDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	row := donationModel.DonationModel{
		DonationOrganizationID: orgID,
		DonationDonorID:        parseOptionalUUID(body.DonorID),
		DonationProjectID:      parseOptionalUUID(body.ProjectID),
		DonationDonorName:      body.DonorName,
		DonationDonorEmail:     body.DonorEmail,
		DonationAmountCents:    body.AmountCents,
		DonationMessage:        body.Message,
		DonationMethod:         body.Method,
		DonationOrderID:        fmt.Sprintf("don-%s", uuid.NewString()),
	}
	if body.Method != "online" {
		now := time.Now()
		row.DonationStatus = "paid"
		row.DonationPaidAt = &now
		row.DonationPaymentGateway = ""
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create donation")
	}

	if body.Method == "online" {
		token, err := service.GenerateSnapToken(row)
		if err != nil {
			log.Println("[ERROR] snap token:", err)
			return helper.Error(c, fiber.StatusBadGateway, "Failed to create payment token")
		}
		if err := ctrl.DB.Model(&row).Update("donation_payment_token", token).Error; err != nil {
			log.Println("[ERROR] store snap token:", err)
		}
		row.DonationPaymentToken = token
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donation created", row)
}

func (ctrl *DonationController) GetAll(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&donationModel.DonationModel{}).
		Where("donation_organization_id = ?", orgID)
	if s := c.Query("status"); s != "" {
		q = q.Where("donation_status = ?", s)
	}
	if p := c.Query("project_id"); p != "" {
		q = q.Where("donation_project_id = ?", p)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count donations")
	}

	var rows []donationModel.DonationModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(paging, total, len(rows)))
}

func (ctrl *DonationController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row donationModel.DonationModel
	if err := ctrl.DB.First(&row, "donation_id = ? AND donation_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donation")
	}
	return helper.Success(c, "OK", row)
}

// Notification is the public midtrans webhook; the signature inside the
// payload is the auth.
func (ctrl *DonationController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := service.HandleDonationStatusWebhook(ctrl.DB, body); err != nil {
		log.Println("[ERROR] donation webhook:", err)
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "OK", nil)
}
