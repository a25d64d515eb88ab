package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	funderController "sarai_backend/internals/features/projects/funders/controller"
	projectController "sarai_backend/internals/features/projects/projects/controller"
)

func ProjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	projects := projectController.NewProjectController(db)
	funders := funderController.NewFunderController(db)

	p := r.Group("/projects")
	p.Post("/", projects.Create)
	p.Get("/", projects.GetAll)
	p.Get("/:id", projects.GetByID)
	p.Put("/:id", projects.Update)
	p.Delete("/:id", projects.Delete)

	f := r.Group("/funders")
	f.Post("/", funders.Create)
	f.Get("/", funders.GetAll)
	f.Get("/:id", funders.GetByID)
	f.Put("/:id", funders.Update)
	f.Delete("/:id", funders.Delete)
}
