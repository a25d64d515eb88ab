package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "sarai_backend/internals/features/organizations/members/model"
	helper "sarai_backend/internals/helpers"
)

// OrgContext resolves the active organization for the request from the
// X-Organization-ID header (or :org_id route param), loads the caller's
// active role in it, and stores both in locals. Every protected endpoint
// runs behind this so the org scope is re-checked per request.
func OrgContext(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}

		raw := c.Get("X-Organization-ID")
		if raw == "" {
			raw = c.Params("org_id")
		}
		orgID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid organization id")
		}

		if helper.IsGlobalAdmin(c) {
			c.Locals(helper.LocalsOrgID, orgID.String())
			c.Locals(helper.LocalsOrgRole, "admin")
			return c.Next()
		}

		var role memberModel.UserRoleModel
		err = db.Where(
			"user_role_user_id = ? AND user_role_organization_id = ? AND user_role_is_active = TRUE",
			userID, orgID,
		).Order("user_role_assigned_at DESC").First(&role).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, "You are not a member of this organization")
			}
			log.Println("[ERROR] org role lookup:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if role.UserRoleExpiresAt != nil && role.UserRoleExpiresAt.Before(time.Now()) {
			return fiber.NewError(fiber.StatusForbidden, "Your membership in this organization has expired")
		}

		c.Locals(helper.LocalsOrgID, orgID.String())
		c.Locals(helper.LocalsOrgRole, role.UserRoleRole)
		return c.Next()
	}
}
