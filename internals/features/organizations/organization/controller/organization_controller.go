package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarai_backend/internals/features/organizations/organization/dto"
	orgModel "sarai_backend/internals/features/organizations/organization/model"
	helper "sarai_backend/internals/helpers"
)

type OrganizationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db, Validate: validator.New()}
}

func (ctrl *OrganizationController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var org orgModel.OrganizationModel
	if err := ctrl.DB.First(&org, "organization_id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Organization not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch organization")
	}
	return helper.Success(c, "OK", org)
}

func (ctrl *OrganizationController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	var org orgModel.OrganizationModel
	if err := ctrl.DB.First(&org, "organization_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Organization not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch organization")
	}
	return helper.Success(c, "OK", org)
}

func (ctrl *OrganizationController) Update(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var org orgModel.OrganizationModel
	if err := ctrl.DB.First(&org, "organization_id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Organization not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch organization")
	}

	var body dto.UpdateOrganizationDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.OrganizationName != nil {
		org.OrganizationName = *body.OrganizationName
	}
	if body.OrganizationSubscriptionPlan != nil {
		org.OrganizationSubscriptionPlan = *body.OrganizationSubscriptionPlan
	}
	if body.OrganizationSubscriptionStatus != nil {
		org.OrganizationSubscriptionStatus = *body.OrganizationSubscriptionStatus
	}

	if err := ctrl.DB.Save(&org).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update organization")
	}
	return helper.Success(c, "Organization updated", org)
}

// GetAll is the platform-level listing, global admin only.
func (ctrl *OrganizationController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&orgModel.OrganizationModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count organizations")
	}

	var orgs []orgModel.OrganizationModel
	if err := ctrl.DB.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&orgs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch organizations")
	}

	return helper.SuccessList(c, "OK", orgs, helper.BuildPagination(paging, total, len(orgs)))
}
