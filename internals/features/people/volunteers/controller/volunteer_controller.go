package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarai_backend/internals/features/people/provisioning/service"
	"sarai_backend/internals/features/people/volunteers/dto"
	volunteerModel "sarai_backend/internals/features/people/volunteers/model"
	helper "sarai_backend/internals/helpers"
)

type VolunteerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVolunteerController(db *gorm.DB) *VolunteerController {
	return &VolunteerController{DB: db, Validate: validator.New()}
}

func (ctrl *VolunteerController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var body dto.CreateVolunteerDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	row := volunteerModel.VolunteerModel{
		VolunteerOrganizationID: orgID,
		VolunteerFullName:       body.FullName,
		VolunteerEmail:          body.Email,
		VolunteerPhone:          body.Phone,
		VolunteerSkills:         body.Skills,
		VolunteerAvailability:   body.Availability,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create volunteer")
	}

	ctrl.provisionIfNeeded(&row)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Volunteer created", row)
}

func (ctrl *VolunteerController) GetAll(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&volunteerModel.VolunteerModel{}).
		Where("volunteer_organization_id = ?", orgID)
	if s := c.Query("status"); s != "" {
		q = q.Where("volunteer_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count volunteers")
	}

	var rows []volunteerModel.VolunteerModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch volunteers")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(paging, total, len(rows)))
}

func (ctrl *VolunteerController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row volunteerModel.VolunteerModel
	if err := ctrl.DB.First(&row, "volunteer_id = ? AND volunteer_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch volunteer")
	}
	return helper.Success(c, "OK", row)
}

func (ctrl *VolunteerController) Update(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row volunteerModel.VolunteerModel
	if err := ctrl.DB.First(&row, "volunteer_id = ? AND volunteer_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch volunteer")
	}

	var body dto.UpdateVolunteerDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.FullName != nil {
		row.VolunteerFullName = *body.FullName
	}
	if body.Email != nil {
		row.VolunteerEmail = body.Email
	}
	if body.Phone != nil {
		row.VolunteerPhone = body.Phone
	}
	if body.Skills != nil {
		row.VolunteerSkills = body.Skills
	}
	if body.Availability != nil {
		row.VolunteerAvailability = body.Availability
	}
	if body.Status != nil {
		row.VolunteerStatus = *body.Status
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update volunteer")
	}

	ctrl.provisionIfNeeded(&row)

	return helper.Success(c, "Volunteer updated", row)
}

func (ctrl *VolunteerController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("volunteer_id = ? AND volunteer_organization_id = ?", c.Params("id"), orgID).
		Delete(&volunteerModel.VolunteerModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete volunteer")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Volunteer not found")
	}
	return helper.Success(c, "Volunteer deleted", nil)
}

func (ctrl *VolunteerController) provisionIfNeeded(row *volunteerModel.VolunteerModel) {
	if row.VolunteerUserID != nil || row.VolunteerEmail == nil || *row.VolunteerEmail == "" {
		return
	}
	res, err := service.HandlePersonRegistered(ctrl.DB, service.PersonRegistered{
		OrganizationID: row.VolunteerOrganizationID,
		PersonType:     "volunteer",
		FullName:       row.VolunteerFullName,
		Email:          *row.VolunteerEmail,
	})
	if err != nil {
		log.Println("[ERROR] volunteer provisioning:", err)
		return
	}
	if err := ctrl.DB.Model(row).Update("volunteer_user_id", res.UserID).Error; err != nil {
		log.Println("[ERROR] volunteer user link:", err)
		return
	}
	row.VolunteerUserID = &res.UserID
}
