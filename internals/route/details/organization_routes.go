package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "sarai_backend/internals/features/organizations/members/controller"
	organizationController "sarai_backend/internals/features/organizations/organization/controller"
)

func OrganizationAdminRoutes(r fiber.Router, db *gorm.DB) {
	orgs := organizationController.NewOrganizationController(db)
	members := memberController.NewMemberController(db)

	r.Get("/organization", orgs.GetByID)
	r.Put("/organization", orgs.Update)

	r.Get("/members", members.List)
	r.Post("/members/roles", members.AssignRole)
	r.Delete("/members/:user_id/roles", members.RevokeRole)
}

func OwnerRoutes(r fiber.Router, db *gorm.DB) {
	orgs := organizationController.NewOrganizationController(db)

	r.Get("/organizations", orgs.GetAll)
}
