package model

import (
	"time"

	"github.com/google/uuid"
)

// CertificateModel: at most one certificate per (user, course); the unique
// index is the double-issue guard, the existence check is only a fast path.
type CertificateModel struct {
	CertificateID               uuid.UUID `gorm:"column:certificate_id;type:uuid;default:gen_random_uuid();primaryKey" json:"certificate_id"`
	CertificateUserID           uuid.UUID `gorm:"column:certificate_user_id;type:uuid;not null;uniqueIndex:uq_certificates_user_course" json:"certificate_user_id"`
	CertificateCourseID         uuid.UUID `gorm:"column:certificate_course_id;type:uuid;not null;uniqueIndex:uq_certificates_user_course;index" json:"certificate_course_id"`
	CertificateNumber           string    `gorm:"column:certificate_number;size:40;not null;uniqueIndex" json:"certificate_number"`
	CertificateVerificationCode string    `gorm:"column:certificate_verification_code;size:20;not null;uniqueIndex" json:"certificate_verification_code"`
	CertificateIssuedAt         time.Time `gorm:"column:certificate_issued_at;not null" json:"certificate_issued_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}
