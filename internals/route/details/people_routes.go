package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	beneficiaryController "sarai_backend/internals/features/people/beneficiaries/controller"
	donorController "sarai_backend/internals/features/people/donors/controller"
	volunteerController "sarai_backend/internals/features/people/volunteers/controller"
)

func PeopleAdminRoutes(r fiber.Router, db *gorm.DB) {
	beneficiaries := beneficiaryController.NewBeneficiaryController(db)
	volunteers := volunteerController.NewVolunteerController(db)
	donors := donorController.NewDonorController(db)

	b := r.Group("/beneficiaries")
	b.Post("/", beneficiaries.Create)
	b.Get("/", beneficiaries.GetAll)
	b.Get("/:id", beneficiaries.GetByID)
	b.Put("/:id", beneficiaries.Update)
	b.Delete("/:id", beneficiaries.Delete)

	v := r.Group("/volunteers")
	v.Post("/", volunteers.Create)
	v.Get("/", volunteers.GetAll)
	v.Get("/:id", volunteers.GetByID)
	v.Put("/:id", volunteers.Update)
	v.Delete("/:id", volunteers.Delete)

	d := r.Group("/donors")
	d.Post("/", donors.Create)
	d.Get("/", donors.GetAll)
	d.Get("/:id", donors.GetByID)
	d.Put("/:id", donors.Update)
	d.Delete("/:id", donors.Delete)
}
