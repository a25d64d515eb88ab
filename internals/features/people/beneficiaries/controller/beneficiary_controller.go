package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarai_backend/internals/features/people/beneficiaries/dto"
	beneficiaryModel "sarai_backend/internals/features/people/beneficiaries/model"
	provisioning "sarai_backend/internals/features/people/provisioning/service"
	helper "sarai_backend/internals/helpers"
)

type BeneficiaryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBeneficiaryController(db *gorm.DB) *BeneficiaryController {
	return &BeneficiaryController{DB: db, Validate: validator.New()}
}

func (ctrl *BeneficiaryController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var body dto.CreateBeneficiaryDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	row := beneficiaryModel.BeneficiaryModel{
		BeneficiaryOrganizationID: orgID,
		BeneficiaryFullName:       body.FullName,
		BeneficiaryEmail:          body.Email,
		BeneficiaryPhone:          body.Phone,
		BeneficiaryBirthDate:      body.BirthDate,
		BeneficiaryAddress:        body.Address,
		BeneficiaryNotes:          body.Notes,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create beneficiary")
	}

	ctrl.provisionIfNeeded(&row)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Beneficiary created", row)
}

func (ctrl *BeneficiaryController) GetAll(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&beneficiaryModel.BeneficiaryModel{}).
		Where("beneficiary_organization_id = ?", orgID)
	if s := c.Query("status"); s != "" {
		q = q.Where("beneficiary_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count beneficiaries")
	}

	var rows []beneficiaryModel.BeneficiaryModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch beneficiaries")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(paging, total, len(rows)))
}

func (ctrl *BeneficiaryController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row beneficiaryModel.BeneficiaryModel
	if err := ctrl.DB.First(&row, "beneficiary_id = ? AND beneficiary_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Beneficiary not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch beneficiary")
	}
	return helper.Success(c, "OK", row)
}

func (ctrl *BeneficiaryController) Update(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var row beneficiaryModel.BeneficiaryModel
	if err := ctrl.DB.First(&row, "beneficiary_id = ? AND beneficiary_organization_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Beneficiary not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch beneficiary")
	}

	var body dto.UpdateBeneficiaryDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.FullName != nil {
		row.BeneficiaryFullName = *body.FullName
	}
	if body.Email != nil {
		row.BeneficiaryEmail = body.Email
	}
	if body.Phone != nil {
		row.BeneficiaryPhone = body.Phone
	}
	if body.BirthDate != nil {
		row.BeneficiaryBirthDate = body.BirthDate
	}
	if body.Address != nil {
		row.BeneficiaryAddress = body.Address
	}
	if body.Notes != nil {
		row.BeneficiaryNotes = body.Notes
	}
	if body.Status != nil {
		row.BeneficiaryStatus = *body.Status
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update beneficiary")
	}

	ctrl.provisionIfNeeded(&row)

	return helper.Success(c, "Beneficiary updated", row)
}

func (ctrl *BeneficiaryController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("beneficiary_id = ? AND beneficiary_organization_id = ?", c.Params("id"), orgID).
		Delete(&beneficiaryModel.BeneficiaryModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete beneficiary")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Beneficiary not found")
	}
	return helper.Success(c, "Beneficiary deleted", nil)
}

// provisionIfNeeded links a login when the record carries an email but no
// user yet. Best-effort: a failure is logged, the record write stands.
func (ctrl *BeneficiaryController) provisionIfNeeded(row *beneficiaryModel.BeneficiaryModel) {
	if row.BeneficiaryUserID != nil || row.BeneficiaryEmail == nil || *row.BeneficiaryEmail == "" {
		return
	}
	res, err := provisioning.HandlePersonRegistered(ctrl.DB, provisioning.PersonRegistered{
		OrganizationID: row.BeneficiaryOrganizationID,
		PersonType:     "beneficiary",
		FullName:       row.BeneficiaryFullName,
		Email:          *row.BeneficiaryEmail,
	})
	if err != nil {
		log.Println("[ERROR] beneficiary provisioning:", err)
		return
	}
	if err := ctrl.DB.Model(row).Update("beneficiary_user_id", res.UserID).Error; err != nil {
		log.Println("[ERROR] beneficiary user link:", err)
		return
	}
	row.BeneficiaryUserID = &res.UserID
}
