package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationModel struct {
	DonationID             uuid.UUID  `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`
	DonationOrganizationID uuid.UUID  `gorm:"column:donation_organization_id;type:uuid;not null;index" json:"donation_organization_id"`
	DonationDonorID        *uuid.UUID `gorm:"column:donation_donor_id;type:uuid" json:"donation_donor_id,omitempty"`
	DonationProjectID      *uuid.UUID `gorm:"column:donation_project_id;type:uuid" json:"donation_project_id,omitempty"`

	DonationDonorName   string `gorm:"column:donation_donor_name;size:100;not null" json:"donation_donor_name"`
	DonationDonorEmail  string `gorm:"column:donation_donor_email;size:255" json:"donation_donor_email"`
	DonationAmountCents int64  `gorm:"column:donation_amount_cents;not null;check:donation_amount_cents > 0" json:"donation_amount_cents"`
	DonationMessage     string `gorm:"column:donation_message;type:text" json:"donation_message"`

	DonationMethod  string `gorm:"column:donation_method;size:20;not null;default:'online'" json:"donation_method"`
	DonationStatus  string `gorm:"column:donation_status;size:20;not null;default:'pending'" json:"donation_status"`
	DonationOrderID string `gorm:"column:donation_order_id;size:100;not null;unique" json:"donation_order_id"`

	DonationPaymentToken   string `gorm:"column:donation_payment_token;type:text" json:"donation_payment_token"`
	DonationPaymentGateway string `gorm:"column:donation_payment_gateway;size:50;default:'midtrans'" json:"donation_payment_gateway"`

	DonationPaidAt *time.Time     `gorm:"column:donation_paid_at" json:"donation_paid_at,omitempty"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (DonationModel) TableName() string {
	return "donations"
}
