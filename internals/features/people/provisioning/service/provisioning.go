package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sarai_backend/internals/constants"
	memberModel "sarai_backend/internals/features/organizations/members/model"
	authService "sarai_backend/internals/features/users/auth/service"
	userModel "sarai_backend/internals/features/users/user/model"
)

// PersonRegistered is emitted when a beneficiary or volunteer record is
// created or updated with an email address. The identity side effect lives
// here, behind an explicit event, instead of inline in the person CRUD.
type PersonRegistered struct {
	OrganizationID uuid.UUID
	PersonType     string // "beneficiary" or "volunteer"
	FullName       string
	Email          string
}

// Result reports what the handler did. TempPassword is only set when a new
// login was created.
type Result struct {
	UserID       uuid.UUID
	Created      bool
	TempPassword string
}

func roleForPersonType(personType string) (string, error) {
	switch personType {
	case "beneficiary":
		return constants.RoleBeneficiary, nil
	case "volunteer":
		return constants.RoleVolunteer, nil
	}
	return "", errors.New("unknown person type: " + personType)
}

// HandlePersonRegistered provisions a login for the person: reuses the user
// matching the email or creates one with a temporary password, then makes
// sure an active role for the organization exists. Idempotent — replaying
// the event neither duplicates the user nor the role.
func HandlePersonRegistered(db *gorm.DB, evt PersonRegistered) (*Result, error) {
	role, err := roleForPersonType(evt.PersonType)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(evt.Email))
	if email == "" {
		return nil, errors.New("person registered without email")
	}

	out := &Result{}
	err = db.Transaction(func(tx *gorm.DB) error {
		var user userModel.UserModel
		err := tx.Where("user_email = ?", email).First(&user).Error
		switch {
		case err == nil:
			// existing login, just link
		case errors.Is(err, gorm.ErrRecordNotFound):
			temp, gerr := authService.GenerateTempPassword()
			if gerr != nil {
				return gerr
			}
			hash, herr := authService.HashPassword(temp)
			if herr != nil {
				return herr
			}
			user = userModel.UserModel{
				UserEmail:    email,
				UserPassword: hash,
				UserFullName: strings.TrimSpace(evt.FullName),
			}
			if cerr := tx.Create(&user).Error; cerr != nil {
				return cerr
			}
			out.Created = true
			out.TempPassword = temp
		default:
			return err
		}
		out.UserID = user.UserID

		var existing memberModel.UserRoleModel
		err = tx.Where(
			"user_role_user_id = ? AND user_role_organization_id = ? AND user_role_is_active = TRUE",
			user.UserID, evt.OrganizationID,
		).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		note := "auto-provisioned from " + evt.PersonType + " record"
		row := memberModel.UserRoleModel{
			UserRoleUserID:         user.UserID,
			UserRoleOrganizationID: evt.OrganizationID,
			UserRoleRole:           role,
			UserRoleIsActive:       true,
			UserRoleAssignedAt:     time.Now(),
			UserRoleNote:           &note,
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] provisioned %s login user=%s created=%v", evt.PersonType, out.UserID, out.Created)
	return out, nil
}
