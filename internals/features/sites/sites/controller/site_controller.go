package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sarai_backend/internals/features/sites/sites/dto"
	siteModel "sarai_backend/internals/features/sites/sites/model"
	helper "sarai_backend/internals/helpers"
	oss "sarai_backend/internals/helpers/oss"
)

type SiteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSiteController(db *gorm.DB) *SiteController {
	return &SiteController{DB: db, Validate: validator.New()}
}

func (ctrl *SiteController) siteForOrg(c *fiber.Ctx) (*siteModel.SiteModel, error) {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return nil, err
	}
	var site siteModel.SiteModel
	if err := ctrl.DB.First(&site, "site_organization_id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Site not found, create it first")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch site")
	}
	return &site, nil
}

// Create provisions the organization's site. One site per organization; the
// unique index on site_organization_id rejects a second create.
func (ctrl *SiteController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrganizationIDFromContext(c)
	if err != nil {
		return err
	}

	var body dto.CreateSiteDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	subdomain := helper.Slugify(body.Subdomain, 63)
	row := siteModel.SiteModel{
		SiteOrganizationID: orgID,
		SiteSubdomain:      subdomain,
		SiteTitle:          body.Title,
		SiteTheme:          body.Theme,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusConflict, "Subdomain already taken or site already exists")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Site created", row)
}

func (ctrl *SiteController) Get(c *fiber.Ctx) error {
	site, err := ctrl.siteForOrg(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", site)
}

func (ctrl *SiteController) Update(c *fiber.Ctx) error {
	site, err := ctrl.siteForOrg(c)
	if err != nil {
		return err
	}

	var body dto.UpdateSiteDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.Title != nil {
		site.SiteTitle = *body.Title
	}
	if body.Theme != nil {
		site.SiteTheme = body.Theme
	}
	if body.IsPublished != nil {
		site.SiteIsPublished = *body.IsPublished
	}

	if err := ctrl.DB.Save(site).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update site")
	}
	return helper.Success(c, "Site updated", site)
}

// UploadBranding accepts a logo or favicon image, converts it to webp and
// stores it on OSS. Field name "file", query param kind=logo|favicon.
func (ctrl *SiteController) UploadBranding(c *fiber.Ctx) error {
	site, err := ctrl.siteForOrg(c)
	if err != nil {
		return err
	}

	kind := c.Query("kind", "logo")
	if kind != "logo" && kind != "favicon" {
		return helper.Error(c, fiber.StatusBadRequest, "kind must be logo or favicon")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing file")
	}
	if !helper.IsImageContentType(fh.Header.Get("Content-Type")) {
		return helper.Error(c, fiber.StatusBadRequest, "File must be an image")
	}

	raw, err := helper.ReadImageFile(fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	opt := helper.DefaultWebPOptions()
	if kind == "favicon" {
		opt.MaxW, opt.MaxH = 128, 128
	}
	blob, err := helper.ConvertToWebP(raw, opt)
	if err != nil {
		log.Println("[ERROR] branding convert:", err)
		return helper.Error(c, fiber.StatusBadRequest, "Unsupported image format")
	}

	client, err := oss.NewOSSClientFromEnv()
	if err != nil {
		log.Println("[ERROR] oss client:", err)
		return helper.Error(c, fiber.StatusServiceUnavailable, "Storage is not configured")
	}
	url, err := client.UploadBytes("sites/"+site.SiteID.String(), blob, "webp", "image/webp")
	if err != nil {
		log.Println("[ERROR] oss upload:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Failed to upload file")
	}

	column := "site_logo_url"
	if kind == "favicon" {
		column = "site_favicon_url"
	}
	if err := ctrl.DB.Model(site).Update(column, url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save file URL")
	}
	return helper.Success(c, "Branding uploaded", fiber.Map{"url": url, "kind": kind})
}

func (ctrl *SiteController) CreatePage(c *fiber.Ctx) error {
	site, err := ctrl.siteForOrg(c)
	if err != nil {
		return err
	}

	var body dto.CreatePageDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	row := siteModel.SitePageModel{
		SitePageSiteID:  site.SiteID,
		SitePageSlug:    helper.Slugify(body.Slug, 120),
		SitePageTitle:   body.Title,
		SitePageContent: body.Content,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusConflict, "A page with this slug already exists")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Page created", row)
}

func (ctrl *SiteController) ListPages(c *fiber.Ctx) error {
	site, err := ctrl.siteForOrg(c)
	if err != nil {
		return err
	}
	var rows []siteModel.SitePageModel
	if err := ctrl.DB.Where("site_page_site_id = ?", site.SiteID).
		Order("site_page_slug ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch pages")
	}
	return helper.Success(c, "OK", rows)
}

func (ctrl *SiteController) UpdatePage(c *fiber.Ctx) error {
	site, err := ctrl.siteForOrg(c)
	if err != nil {
		return err
	}

	var row siteModel.SitePageModel
	if err := ctrl.DB.First(&row, "site_page_id = ? AND site_page_site_id = ?", c.Params("page_id"), site.SiteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Page not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch page")
	}

	var body dto.UpdatePageDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.Title != nil {
		row.SitePageTitle = *body.Title
	}
	if body.Content != nil {
		row.SitePageContent = body.Content
	}
	if body.IsPublished != nil {
		row.SitePageIsPublished = *body.IsPublished
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update page")
	}
	return helper.Success(c, "Page updated", row)
}

func (ctrl *SiteController) DeletePage(c *fiber.Ctx) error {
	site, err := ctrl.siteForOrg(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("site_page_id = ? AND site_page_site_id = ?", c.Params("page_id"), site.SiteID).
		Delete(&siteModel.SitePageModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete page")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Page not found")
	}
	return helper.Success(c, "Page deleted", nil)
}

// SetMenu replaces the site's menu wholesale; ordering screens send the full
// list every time.
func (ctrl *SiteController) SetMenu(c *fiber.Ctx) error {
	site, err := ctrl.siteForOrg(c)
	if err != nil {
		return err
	}

	var body []dto.MenuItemDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	for _, item := range body {
		if err := ctrl.Validate.Struct(item); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("site_menu_item_site_id = ?", site.SiteID).
			Delete(&siteModel.SiteMenuItemModel{}).Error; err != nil {
			return err
		}
		for _, item := range body {
			var pageID *uuid.UUID
			if item.PageID != nil {
				if id, perr := uuid.Parse(*item.PageID); perr == nil {
					pageID = &id
				}
			}
			row := siteModel.SiteMenuItemModel{
				SiteMenuItemSiteID:     site.SiteID,
				SiteMenuItemLabel:      item.Label,
				SiteMenuItemOrderIndex: item.OrderIndex,
				SiteMenuItemPageID:     pageID,
				SiteMenuItemURL:        item.URL,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save menu")
	}
	return helper.Success(c, "Menu saved", nil)
}

func (ctrl *SiteController) CreateForm(c *fiber.Ctx) error {
	site, err := ctrl.siteForOrg(c)
	if err != nil {
		return err
	}

	var body dto.CreateFormDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlug(ctrl.DB, helper.Slugify(body.Name, 100), "site_forms", "site_form_slug")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	row := siteModel.SiteFormModel{
		SiteFormSiteID: site.SiteID,
		SiteFormName:   body.Name,
		SiteFormSlug:   slug,
		SiteFormFields: body.Fields,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create form")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Form created", row)
}

func (ctrl *SiteController) ListFormSubmissions(c *fiber.Ctx) error {
	site, err := ctrl.siteForOrg(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&siteModel.SiteFormSubmissionModel{}).
		Joins("JOIN site_forms ON site_forms.site_form_id = site_form_submission_form_id").
		Where("site_forms.site_form_site_id = ? AND site_form_submission_form_id = ?", site.SiteID, c.Params("form_id"))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	var rows []siteModel.SiteFormSubmissionModel
	if err := q.Order("site_form_submissions.created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(paging, total, len(rows)))
}
