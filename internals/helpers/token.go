package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth / organization-context middlewares.
const (
	LocalsUserID        = "user_id"
	LocalsIsGlobalAdmin = "is_global_admin"
	LocalsOrgID         = "org_id"
	LocalsOrgRole       = "org_role"
)

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocalsUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	return id, nil
}

func GetOrganizationIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocalsOrgID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Missing organization context")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid organization id")
	}
	return id, nil
}

func GetOrgRoleFromContext(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalsOrgRole).(string)
	return role
}

func IsGlobalAdmin(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocalsIsGlobalAdmin).(bool)
	return v
}
