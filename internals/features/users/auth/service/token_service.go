package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sarai_backend/internals/configs"
	authModel "sarai_backend/internals/features/users/auth/model"
	userModel "sarai_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// CreateAccessToken signs the slim access JWT; org roles are resolved per
// request by the org-context middleware, not carried in the token.
func CreateAccessToken(user *userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":             user.UserID.String(),
		"user_name":       user.UserFullName,
		"is_global_admin": user.UserIsGlobalAdmin,
		"iat":             now.Unix(),
		"exp":             now.Add(accessTTLDefault).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// CreateRefreshToken signs a refresh JWT and stores its HMAC hash.
func CreateRefreshToken(db *gorm.DB, userID uuid.UUID) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	exp := now.Add(refreshTTLDefault)
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	row := authModel.RefreshTokenModel{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      computeRefreshHash(token, secret),
		RefreshTokenExpiresAt: exp,
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return token, nil
}

// RotateRefreshToken validates the presented refresh JWT against the stored
// hash, deletes it, and returns the owning user id.
func RotateRefreshToken(db *gorm.DB, token string) (uuid.UUID, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return uuid.Nil, err
	}

	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}

	hash := computeRefreshHash(token, secret)
	res := db.Where("refresh_token_hash = ? AND refresh_token_expires_at > now()", hash).
		Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token unknown or expired")
	}
	return userID, nil
}

// BlacklistAccessToken revokes an access token until its natural expiry.
func BlacklistAccessToken(db *gorm.DB, token string) error {
	secret, err := getJWTSecret()
	if err != nil {
		return err
	}
	exp := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, perr := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); perr == nil {
		if f, ok := claims["exp"].(float64); ok {
			exp = time.Unix(int64(f), 0)
		}
	}
	return db.Create(&authModel.TokenBlacklist{Token: token, ExpiredAt: exp}).Error
}
