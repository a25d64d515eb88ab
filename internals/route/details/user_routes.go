package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sarai_backend/internals/features/users/user/controller"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	r.Get("/profile", ctrl.GetProfile)
	r.Put("/profile", ctrl.UpdateProfile)
}
