package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "sarai_backend/internals/middlewares/auth"
	routeDetails "sarai_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Mounting auth routes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Mounting public routes...")
	public := app.Group("/api/public")
	routeDetails.PublicSiteRoutes(public, db)
	routeDetails.PublicCertificateRoutes(public, db)
	routeDetails.DonationWebhookRoutes(app, db)

	// /api/u: any authenticated user, no organization scope
	log.Println("[INFO] Mounting user routes...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(user, db)
	routeDetails.CourseLearnerRoutes(user, db)

	// /api/u scoped: organization resolved from X-Organization-ID
	scoped := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OrgContext(db),
	)
	routeDetails.CourseMemberRoutes(scoped, db)

	// /api/a: admin and manager roles of the resolved organization
	log.Println("[INFO] Mounting admin routes...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OrgContext(db),
		authMiddleware.OnlyRoles("Admin or manager role required", "admin", "manager"),
	)
	routeDetails.OrganizationAdminRoutes(admin, db)
	routeDetails.PeopleAdminRoutes(admin, db)
	routeDetails.ProjectAdminRoutes(admin, db)
	routeDetails.FinanceAdminRoutes(admin, db)
	routeDetails.CourseAdminRoutes(admin, db)
	routeDetails.SiteAdminRoutes(admin, db)

	// /api/o: platform operators
	log.Println("[INFO] Mounting owner routes...")
	owner := app.Group("/api/o",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyGlobalAdmin(),
	)
	routeDetails.OwnerRoutes(owner, db)
}
