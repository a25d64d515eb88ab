package controller

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sarai_backend/internals/features/sites/sites/dto"
	siteModel "sarai_backend/internals/features/sites/sites/model"
	helper "sarai_backend/internals/helpers"
)

// PublicSiteController serves the rendered whitelabel sites. No auth; only
// published content is visible.
type PublicSiteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPublicSiteController(db *gorm.DB) *PublicSiteController {
	return &PublicSiteController{DB: db, Validate: validator.New()}
}

func (ctrl *PublicSiteController) publishedSite(c *fiber.Ctx) (*siteModel.SiteModel, error) {
	var site siteModel.SiteModel
	if err := ctrl.DB.First(&site, "site_subdomain = ? AND site_is_published", c.Params("subdomain")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Site not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch site")
	}
	return &site, nil
}

// GetSite returns the site shell: branding, theme and menu in one payload.
func (ctrl *PublicSiteController) GetSite(c *fiber.Ctx) error {
	site, err := ctrl.publishedSite(c)
	if err != nil {
		return err
	}

	var menu []siteModel.SiteMenuItemModel
	if err := ctrl.DB.Where("site_menu_item_site_id = ?", site.SiteID).
		Order("site_menu_item_order_index ASC").
		Find(&menu).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch menu")
	}

	return helper.Success(c, "OK", fiber.Map{
		"site": site,
		"menu": menu,
	})
}

func (ctrl *PublicSiteController) GetPage(c *fiber.Ctx) error {
	site, err := ctrl.publishedSite(c)
	if err != nil {
		return err
	}

	var page siteModel.SitePageModel
	if err := ctrl.DB.First(&page,
		"site_page_site_id = ? AND site_page_slug = ? AND site_page_is_published",
		site.SiteID, c.Params("page_slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Page not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch page")
	}
	return helper.Success(c, "OK", page)
}

// SubmitForm takes a visitor's submission for an active site form.
func (ctrl *PublicSiteController) SubmitForm(c *fiber.Ctx) error {
	site, err := ctrl.publishedSite(c)
	if err != nil {
		return err
	}

	var form siteModel.SiteFormModel
	if err := ctrl.DB.First(&form,
		"site_form_site_id = ? AND site_form_slug = ? AND site_form_is_active",
		site.SiteID, c.Params("form_slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Form not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch form")
	}

	var body dto.SubmitSiteFormDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	raw, err := sonic.Marshal(body.Data)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid form data")
	}
	row := siteModel.SiteFormSubmissionModel{
		SiteFormSubmissionFormID: form.SiteFormID,
		SiteFormSubmissionData:   datatypes.JSON(raw),
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save submission")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Submission received", nil)
}
