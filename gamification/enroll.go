package gamification

import (
	"fmt"
	"log"

	"elevated/models"
)

const enrollXPReward = 10

// EnrollResult aggregates everything a single enroll call changed.
type EnrollResult struct {
	Enrollment *models.Enrollment `json:"enrollment"`
	XPAwarded  int                `json:"xp_awarded"`
	NewBadges  []models.Badge     `json:"new_badges,omitempty"`
}

// Enroll creates the (user, course) enrollment, credits the flat enrollment
// XP and evaluates enrollment-count badges. A duplicate pair is rejected with
// store.ErrConflict; the store's uniqueness discipline backs this up.
func (e *Engine) Enroll(userID, courseID uint) (*EnrollResult, error) {
	if _, err := e.store.GetUser(userID); err != nil {
		return nil, fmt.Errorf("user %d: %w", userID, err)
	}
	if _, err := e.store.GetCourse(courseID); err != nil {
		return nil, fmt.Errorf("course %d: %w", courseID, err)
	}

	enrollment := &models.Enrollment{
		UserID:        userID,
		CourseID:      courseID,
		Progress:      0,
		CurrentLesson: 1,
	}
	if err := e.store.CreateEnrollment(enrollment); err != nil {
		return nil, err
	}

	result := &EnrollResult{Enrollment: enrollment}
	result.XPAwarded, _ = e.addXP(userID, enrollXPReward)

	enrollments, err := e.store.GetEnrollments(userID)
	if err != nil {
		log.Printf("[GAMIFICATION] Enrollment count for user %d unavailable: %v", userID, err)
		return result, nil
	}
	result.NewBadges = e.evaluateBadges(userID, EnrollmentCreated{
		UserID:          userID,
		CourseID:        courseID,
		EnrollmentCount: len(enrollments),
	})
	return result, nil
}
