package controller

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarai_backend/internals/configs"
	"sarai_backend/internals/constants"
	memberModel "sarai_backend/internals/features/organizations/members/model"
	orgModel "sarai_backend/internals/features/organizations/organization/model"
	"sarai_backend/internals/features/users/auth/dto"
	authModel "sarai_backend/internals/features/users/auth/model"
	"sarai_backend/internals/features/users/auth/service"
	userModel "sarai_backend/internals/features/users/user/model"
	helper "sarai_backend/internals/helpers"
	"sarai_backend/internals/helpers/mailer"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   mailer.Service
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New(), Mailer: mailer.NewFromEnv()}
}

// Register creates the user and, when an organization name is supplied,
// the tenant plus the caller's admin role in one transaction.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserEmail:    strings.ToLower(strings.TrimSpace(body.Email)),
		UserPassword: hash,
		UserFullName: strings.TrimSpace(body.FullName),
	}

	var org *orgModel.OrganizationModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if body.OrganizationName == "" {
			return nil
		}

		slug, err := helper.EnsureUniqueSlug(tx, helper.Slugify(body.OrganizationName, 100), "organizations", "organization_slug")
		if err != nil {
			return err
		}
		org = &orgModel.OrganizationModel{
			OrganizationName: strings.TrimSpace(body.OrganizationName),
			OrganizationSlug: slug,
		}
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		role := memberModel.UserRoleModel{
			UserRoleUserID:         user.UserID,
			UserRoleOrganizationID: org.OrganizationID,
			UserRoleRole:           constants.RoleAdmin,
			UserRoleIsActive:       true,
			UserRoleAssignedAt:     time.Now(),
		}
		return tx.Create(&role).Error
	})
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.Error(c, fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] register:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registered", fiber.Map{
		"user":         user,
		"organization": org,
	})
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(body.Email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account has been deactivated")
	}
	if !service.CheckPassword(user.UserPassword, body.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, err := service.CreateAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	refresh, err := service.CreateRefreshToken(ctrl.DB, user.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}

	setRefreshCookie(c, refresh)

	roles, err := ctrl.loadMemberships(user.UserID)
	if err != nil {
		log.Println("[ERROR] memberships:", err)
	}

	return helper.Success(c, "Logged in", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          user,
		"memberships":   roles,
	})
}

func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Cookies("refresh_token"))
	if token == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		token = strings.TrimSpace(body.RefreshToken)
	}
	if token == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	userID, err := service.RotateRefreshToken(ctrl.DB, token)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to refresh token")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account has been deactivated")
	}

	access, err := service.CreateAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	refresh, err := service.CreateRefreshToken(ctrl.DB, user.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}
	setRefreshCookie(c, refresh)

	return helper.Success(c, "Token refreshed", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		if err := service.BlacklistAccessToken(ctrl.DB, strings.TrimSpace(parts[1])); err != nil {
			log.Println("[ERROR] blacklist on logout:", err)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.Success(c, "Logged out", nil)
}

func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var body dto.ForgotPasswordDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(body.Email))).First(&user).Error
	if err != nil {
		// same answer whether the account exists or not
		return helper.Success(c, "If the email exists, a reset link has been sent", nil)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create reset token")
	}
	token := hex.EncodeToString(raw)
	sum := sha256.Sum256([]byte(token))

	row := authModel.PasswordResetTokenModel{
		PasswordResetTokenUserID:    user.UserID,
		PasswordResetTokenHash:      sum[:],
		PasswordResetTokenExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create reset token")
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(configs.AppBaseURL, "/"), token)
	if err := ctrl.Mailer.Send(mailer.Message{
		ToName:  user.UserFullName,
		ToEmail: user.UserEmail,
		Subject: "Password reset",
		Text:    "Use this link to reset your password: " + link,
		HTML:    fmt.Sprintf(`<p>Use <a href="%s">this link</a> to reset your password.</p>`, link),
	}); err != nil {
		log.Println("[ERROR] reset mail:", err)
	}

	return helper.Success(c, "If the email exists, a reset link has been sent", nil)
}

func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var body dto.ResetPasswordDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	sum := sha256.Sum256([]byte(strings.TrimSpace(body.Token)))
	var row authModel.PasswordResetTokenModel
	err := ctrl.DB.Where("password_reset_token_hash = ? AND password_reset_token_used_at IS NULL AND password_reset_token_expires_at > now()", sum[:]).
		First(&row).Error
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or expired reset token")
	}

	hash, err := service.HashPassword(body.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	now := time.Now()
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", row.PasswordResetTokenUserID).
			Update("user_password", hash).Error; err != nil {
			return err
		}
		return tx.Model(&row).Update("password_reset_token_used_at", now).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to reset password")
	}
	return helper.Success(c, "Password updated", nil)
}

func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.ChangePasswordDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !service.CheckPassword(user.UserPassword, body.OldPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Old password does not match")
	}

	hash, err := service.HashPassword(body.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := ctrl.DB.Model(&user).Update("user_password", hash).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	return helper.Success(c, "Password changed", nil)
}

// Me returns the caller plus their active memberships per organization.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	roles, err := ctrl.loadMemberships(user.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch memberships")
	}

	return helper.Success(c, "OK", fiber.Map{
		"user":        user,
		"memberships": roles,
	})
}

type membershipRow struct {
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	OrganizationSlug string `json:"organization_slug"`
	Role             string `json:"role"`
}

func (ctrl *AuthController) loadMemberships(userID interface{}) ([]membershipRow, error) {
	var rows []membershipRow
	err := ctrl.DB.Table("user_roles").
		Joins("JOIN organizations ON organizations.organization_id = user_roles.user_role_organization_id").
		Where("user_roles.user_role_user_id = ? AND user_roles.user_role_is_active = TRUE", userID).
		Where("organizations.deleted_at IS NULL").
		Select(`organizations.organization_id AS organization_id,
		        organizations.organization_name AS organization_name,
		        organizations.organization_slug AS organization_slug,
		        user_roles.user_role_role AS role`).
		Scan(&rows).Error
	return rows, err
}

func setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}
