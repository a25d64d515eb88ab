package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sarai_backend/internals/features/users/auth/controller"
	middlewares "sarai_backend/internals/middlewares"
	authMiddleware "sarai_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.RefreshToken)
	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	auth.Post("/reset-password", ctrl.ResetPassword)

	authed := auth.Group("", authMiddleware.AuthMiddleware(db))
	authed.Post("/logout", ctrl.Logout)
	authed.Post("/change-password", ctrl.ChangePassword)
	authed.Get("/me", ctrl.Me)
}
