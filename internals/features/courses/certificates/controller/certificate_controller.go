package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	certificateModel "sarai_backend/internals/features/courses/certificates/model"
	"sarai_backend/internals/features/courses/certificates/service"
	helper "sarai_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// CheckEligibility reports whether the caller can receive a certificate for
// the course, with the reason and summary when not.
func (ctrl *CertificateController) CheckEligibility(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	result, err := service.CheckEligibility(ctrl.DB, userID, courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check eligibility")
	}
	return helper.Success(c, "OK", result)
}

// Issue creates the certificate. Failing eligibility comes back as 422 with
// the reason string; a duplicate as 409.
func (ctrl *CertificateController) Issue(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	cert, err := service.IssueCertificate(ctrl.DB, userID, courseID)
	if err != nil {
		var ineligible *service.IneligibleError
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		case errors.Is(err, service.ErrAlreadyIssued):
			return helper.Error(c, fiber.StatusConflict, "Certificate already issued")
		case errors.As(err, &ineligible):
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, ineligible.Result.Reason, ineligible.Result)
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue certificate")
		}
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Certificate issued", cert)
}

// ListMine returns the caller's certificates.
func (ctrl *CertificateController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var rows []certificateModel.CertificateModel
	if err := ctrl.DB.Where("certificate_user_id = ?", userID).
		Order("certificate_issued_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certificates")
	}
	return helper.Success(c, "OK", rows)
}

// Verify is the public lookup by verification code, for anyone holding a
// printed certificate.
func (ctrl *CertificateController) Verify(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing verification code")
	}

	cert, err := service.VerifyCertificate(ctrl.DB, code)
	if err != nil {
		if errors.Is(err, service.ErrCertNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify certificate")
	}
	return helper.Success(c, "OK", cert)
}
