package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	certificateModel "sarai_backend/internals/features/courses/certificates/model"
	courseModel "sarai_backend/internals/features/courses/courses/model"
	enrollmentModel "sarai_backend/internals/features/courses/enrollments/model"
	helper "sarai_backend/internals/helpers"
)

var (
	ErrAlreadyIssued = errors.New("certificate already issued")
	ErrCertNotFound  = errors.New("certificate not found")
)

// codeAlphabet avoids 0/O and 1/I so the codes survive being read aloud or
// retyped from a printout.
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

func randomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, c := range buf {
		b.WriteByte(codeAlphabet[int(c)%len(codeAlphabet)])
	}
	return b.String(), nil
}

// IneligibleError carries the eligibility decision so the handler can return
// the reason string verbatim.
type IneligibleError struct {
	Result Eligibility
}

func (e *IneligibleError) Error() string {
	return e.Result.Reason
}

// IssueCertificate re-checks eligibility, then inserts the certificate. The
// unique constraint on (user, course) is what actually prevents double issue
// under concurrent requests. Online courses additionally get the
// certificate_generated flag flipped on their progress row; in-person courses
// do not.
func IssueCertificate(db *gorm.DB, userID, courseID uuid.UUID) (*certificateModel.CertificateModel, error) {
	var course courseModel.CourseModel
	if err := db.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	result, err := checkEligibilityForCourse(db, userID, &course)
	if err != nil {
		return nil, err
	}
	if !result.Eligible {
		if result.Reason == reasonAlreadyIssued {
			return nil, ErrAlreadyIssued
		}
		return nil, &IneligibleError{Result: result}
	}

	number, err := randomCode(10)
	if err != nil {
		return nil, err
	}
	verification, err := randomCode(8)
	if err != nil {
		return nil, err
	}

	cert := certificateModel.CertificateModel{
		CertificateUserID:           userID,
		CertificateCourseID:         courseID,
		CertificateNumber:           fmt.Sprintf("CERT-%d-%s", time.Now().Year(), number),
		CertificateVerificationCode: verification,
		CertificateIssuedAt:         time.Now(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cert).Error; err != nil {
			// only a duplicate on (user, course) means already issued;
			// anything else propagates as an infrastructure failure
			if helper.IsUniqueViolation(err) {
				return ErrAlreadyIssued
			}
			return err
		}
		if course.CourseType == "online" {
			return tx.Model(&enrollmentModel.UserCourseProgressModel{}).
				Where("user_course_progress_user_id = ? AND user_course_progress_course_id = ?", userID, courseID).
				Update("user_course_progress_certificate_generated", true).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// VerifiedCertificate is the public verification view.
type VerifiedCertificate struct {
	CertificateNumber string    `json:"certificate_number"`
	IssuedAt          time.Time `json:"issued_at"`
	CourseName        string    `json:"course_name"`
	HolderName        string    `json:"holder_name"`
}

// VerifyCertificate resolves a verification code to its certificate. Public,
// no auth.
func VerifyCertificate(db *gorm.DB, code string) (*VerifiedCertificate, error) {
	var out VerifiedCertificate
	err := db.Table("certificates").
		Select(`certificates.certificate_number,
			certificates.certificate_issued_at AS issued_at,
			courses.course_name,
			users.user_full_name AS holder_name`).
		Joins("JOIN courses ON courses.course_id = certificates.certificate_course_id").
		Joins("JOIN users ON users.user_id = certificates.certificate_user_id").
		Where("certificates.certificate_verification_code = ?", code).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCertNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
