package models

import (
	"time"

	"gorm.io/gorm"
)

// Certification is an issued completion credential. Issuance is gated on a
// completed enrollment; no uniqueness per (user, course) is enforced.
type Certification struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	Title             string    `json:"title" gorm:"not null"`
	IssueDate         time.Time `json:"issue_date"`
	CertificateURL    string    `json:"certificate_url"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	Course            Course    `json:"course" gorm:"foreignKey:CourseID"`
}
