package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "sarai_backend/internals/helpers"
)

func asUser(ctrl *GradingController, h func(*fiber.Ctx) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(helper.LocalsUserID, uuid.NewString())
		return h(c)
	}
}

// A malformed module id is a client error, not a database cast failure.
func TestGetMySubmission_InvalidModuleID(t *testing.T) {
	app := fiber.New()
	ctrl := NewGradingController(nil)
	app.Get("/modules/:module_id/submission", asUser(ctrl, ctrl.GetMySubmission))

	resp, err := app.Test(httptest.NewRequest("GET", "/modules/not-a-uuid/submission", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitForm_InvalidModuleID(t *testing.T) {
	app := fiber.New()
	ctrl := NewGradingController(nil)
	app.Post("/modules/:module_id/form", asUser(ctrl, ctrl.SubmitForm))

	resp, err := app.Test(httptest.NewRequest("POST", "/modules/not-a-uuid/form", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
