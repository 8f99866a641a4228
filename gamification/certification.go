package gamification

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"elevated/models"
	"elevated/store"
)

// IssueCertification issues a completion credential for (user, course).
// The gate: an enrollment must exist and be completed, otherwise
// ErrPreconditionFailed. Issuance is not deduplicated; the observed product
// behavior allows re-issuing, and callers own avoiding double issue.
func (e *Engine) IssueCertification(userID, courseID uint, title string) (*models.Certification, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", ErrInvalidArgument)
	}
	enrollment, err := e.store.GetEnrollment(userID, courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("course not completed by user %d: %w", userID, ErrPreconditionFailed)
		}
		return nil, err
	}
	if !enrollment.Completed {
		return nil, fmt.Errorf("course not completed by user %d: %w", userID, ErrPreconditionFailed)
	}

	certification := &models.Certification{
		UserID:            userID,
		CourseID:          courseID,
		Title:             title,
		IssueDate:         time.Now(),
		CertificateURL:    composeCertificateURL(userID, courseID, time.Now()),
		CertificateNumber: uuid.NewString(),
	}
	if err := e.store.CreateCertification(certification); err != nil {
		return nil, err
	}
	return certification, nil
}

// composeCertificateURL builds the opaque certificate reference. No document
// is rendered behind it.
func composeCertificateURL(userID, courseID uint, issuedAt time.Time) string {
	return fmt.Sprintf("https://elevated.edu/certificates/%d_%d_%d", userID, courseID, issuedAt.UnixMilli())
}
