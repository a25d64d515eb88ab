package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FinanceEntryModel covers both sides of the ledger: direction "receivable"
// or "payable".
type FinanceEntryModel struct {
	FinanceEntryID             uuid.UUID  `gorm:"column:finance_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"finance_entry_id"`
	FinanceEntryOrganizationID uuid.UUID  `gorm:"column:finance_entry_organization_id;type:uuid;not null;index" json:"finance_entry_organization_id"`
	FinanceEntryProjectID      *uuid.UUID `gorm:"column:finance_entry_project_id;type:uuid" json:"finance_entry_project_id,omitempty"`
	FinanceEntryDirection      string     `gorm:"column:finance_entry_direction;size:12;not null" json:"finance_entry_direction"`
	FinanceEntryDescription    string     `gorm:"column:finance_entry_description;size:255;not null" json:"finance_entry_description"`
	FinanceEntryAmountCents    int64      `gorm:"column:finance_entry_amount_cents;not null;check:finance_entry_amount_cents > 0" json:"finance_entry_amount_cents"`
	FinanceEntryDueDate        *time.Time `gorm:"column:finance_entry_due_date" json:"finance_entry_due_date,omitempty"`
	FinanceEntryStatus         string     `gorm:"column:finance_entry_status;size:20;not null;default:'pending'" json:"finance_entry_status"`
	FinanceEntryPaidAt         *time.Time `gorm:"column:finance_entry_paid_at" json:"finance_entry_paid_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (FinanceEntryModel) TableName() string {
	return "finance_entries"
}
