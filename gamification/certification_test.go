package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificationGate(t *testing.T) {
	engine, _, user, course := newTestEngine(t)
	enrolled, err := engine.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	// Incomplete enrollment: blocked.
	_, err = engine.IssueCertification(user.ID, course.ID, "Advanced JavaScript")
	assert.ErrorIs(t, err, ErrPreconditionFailed)

	_, err = engine.AdvanceProgress(enrolled.Enrollment.ID, 100)
	require.NoError(t, err)

	certification, err := engine.IssueCertification(user.ID, course.ID, "Advanced JavaScript")
	require.NoError(t, err)
	assert.Equal(t, user.ID, certification.UserID)
	assert.Equal(t, course.ID, certification.CourseID)
	assert.Contains(t, certification.CertificateURL, "https://elevated.edu/certificates/")
	assert.NotEmpty(t, certification.CertificateNumber)
	assert.False(t, certification.IssueDate.IsZero())
}

func TestCertificationWithoutEnrollment(t *testing.T) {
	engine, _, user, course := newTestEngine(t)
	_, err := engine.IssueCertification(user.ID, course.ID, "Title")
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

func TestCertificationNotDeduplicated(t *testing.T) {
	// Re-issuing for the same pair is allowed; the caller owns avoiding it.
	engine, st, user, course := newTestEngine(t)
	enrolled, err := engine.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	_, err = engine.AdvanceProgress(enrolled.Enrollment.ID, 100)
	require.NoError(t, err)

	_, err = engine.IssueCertification(user.ID, course.ID, "Title")
	require.NoError(t, err)
	_, err = engine.IssueCertification(user.ID, course.ID, "Title")
	require.NoError(t, err)

	certifications, err := st.GetCertifications(user.ID)
	require.NoError(t, err)
	assert.Len(t, certifications, 2)
}

func TestCertificationRequiresTitle(t *testing.T) {
	engine, _, user, course := newTestEngine(t)
	_, err := engine.IssueCertification(user.ID, course.ID, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
