package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sarai_backend/internals/constants"
	"sarai_backend/internals/features/organizations/members/dto"
	memberModel "sarai_backend/internals/features/organizations/members/model"
	helper "sarai_backend/internals/helpers"
)

type MemberController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db, Validate: validator.New()}
}

// AssignRole upserts the member's role: any previous active role in the
// organization is deactivated first so at most one stays active.
func (ctrl *MemberController) AssignRole(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.AssignRoleDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsOrganizationRole(body.Role) {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown role")
	}
	targetID, err := uuid.Parse(body.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var created memberModel.UserRoleModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&memberModel.UserRoleModel{}).
			Where("user_role_user_id = ? AND user_role_organization_id = ? AND user_role_is_active = TRUE", targetID, orgID).
			Update("user_role_is_active", false).Error; err != nil {
			return err
		}
		created = memberModel.UserRoleModel{
			UserRoleUserID:         targetID,
			UserRoleOrganizationID: orgID,
			UserRoleRole:           body.Role,
			UserRoleIsActive:       true,
			UserRoleExpiresAt:      body.ExpiresAt,
			UserRoleAssignedAt:     time.Now(),
			UserRoleAssignedBy:     &actorID,
			UserRoleNote:           body.Note,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to assign role")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Role assigned", created)
}

func (ctrl *MemberController) RevokeRole(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctrl.DB.Model(&memberModel.UserRoleModel{}).
		Where("user_role_user_id = ? AND user_role_organization_id = ? AND user_role_is_active = TRUE", targetID, orgID).
		Update("user_role_is_active", false)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to revoke role")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Active membership not found")
	}
	return helper.Success(c, "Role revoked", nil)
}

func (ctrl *MemberController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Table("user_roles").
		Joins("JOIN users ON users.user_id = user_roles.user_role_user_id").
		Where("user_roles.user_role_organization_id = ? AND user_roles.user_role_is_active = TRUE", orgID).
		Where("users.deleted_at IS NULL")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var members []dto.MemberResponse
	if err := base.
		Select(`users.user_id AS user_id,
		        users.user_full_name AS full_name,
		        users.user_email AS email,
		        user_roles.user_role_role AS role,
		        user_roles.user_role_is_active AS is_active,
		        user_roles.user_role_expires_at AS expires_at,
		        user_roles.user_role_assigned_at AS assigned_at`).
		Order("user_roles.user_role_assigned_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&members).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	return helper.SuccessList(c, "OK", members, helper.BuildPagination(paging, total, len(members)))
}
