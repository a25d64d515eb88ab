package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "sarai_backend/internals/features/courses/certificates/controller"
	organizationController "sarai_backend/internals/features/organizations/organization/controller"
	siteController "sarai_backend/internals/features/sites/sites/controller"
)

func SiteAdminRoutes(r fiber.Router, db *gorm.DB) {
	sites := siteController.NewSiteController(db)

	s := r.Group("/site")
	s.Post("/", sites.Create)
	s.Get("/", sites.Get)
	s.Put("/", sites.Update)
	s.Post("/branding", sites.UploadBranding)
	s.Put("/menu", sites.SetMenu)

	s.Post("/pages", sites.CreatePage)
	s.Get("/pages", sites.ListPages)
	s.Put("/pages/:page_id", sites.UpdatePage)
	s.Delete("/pages/:page_id", sites.DeletePage)

	s.Post("/forms", sites.CreateForm)
	s.Get("/forms/:form_id/submissions", sites.ListFormSubmissions)
}

func PublicSiteRoutes(r fiber.Router, db *gorm.DB) {
	public := siteController.NewPublicSiteController(db)
	orgs := organizationController.NewOrganizationController(db)

	r.Get("/organizations/:slug", orgs.GetBySlug)

	r.Get("/sites/:subdomain", public.GetSite)
	r.Get("/sites/:subdomain/pages/:page_slug", public.GetPage)
	r.Post("/sites/:subdomain/forms/:form_slug", public.SubmitForm)
}

func PublicCertificateRoutes(r fiber.Router, db *gorm.DB) {
	certs := certificateController.NewCertificateController(db)

	r.Get("/certificates/:code", certs.Verify)
}
