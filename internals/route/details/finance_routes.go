package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "sarai_backend/internals/features/donations/donations/controller"
	financeEntryController "sarai_backend/internals/features/finance/entries/controller"
)

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	donations := donationController.NewDonationController(db)
	entries := financeEntryController.NewFinanceEntryController(db)

	d := r.Group("/donations")
	d.Post("/", donations.Create)
	d.Get("/", donations.GetAll)
	d.Get("/:id", donations.GetByID)

	e := r.Group("/finance-entries")
	e.Post("/", entries.Create)
	e.Get("/", entries.GetAll)
	e.Get("/:id", entries.GetByID)
	e.Put("/:id", entries.Update)
	e.Post("/:id/pay", entries.MarkPaid)
	e.Delete("/:id", entries.Delete)
}

// DonationWebhookRoutes is mounted outside every auth group; the payment
// gateway authenticates through the payload signature.
func DonationWebhookRoutes(app *fiber.App, db *gorm.DB) {
	donations := donationController.NewDonationController(db)
	app.Post("/api/donations/notification", donations.Notification)
}
