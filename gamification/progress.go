package gamification

import (
	"fmt"

	"elevated/models"
)

const progressXPReward = 10

// ProgressResult is the aggregate outcome of one progress advance.
type ProgressResult struct {
	Enrollment *models.Enrollment `json:"enrollment"`
	XPAwarded  int                `json:"xp_awarded"`
}

// AdvanceProgress sets an enrollment's progress to newProgress and recomputes
// the derived fields: completed (progress >= 100) and the current lesson
// (ceil(progress/100 * lessonsCount)).
//
// XP policy: a fixed +10 whenever newProgress lands exactly on a positive
// multiple of 10. Repeat calls landing on the same multiple grant XP again;
// this layer does not deduplicate. Progress may also move backwards: there
// is no monotonicity check, and callers rely on that for admin corrections.
func (e *Engine) AdvanceProgress(enrollmentID uint, newProgress int) (*ProgressResult, error) {
	if newProgress < 0 || newProgress > 100 {
		return nil, fmt.Errorf("progress %d out of range [0,100]: %w", newProgress, ErrInvalidArgument)
	}

	enrollment, err := e.store.GetEnrollmentByID(enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("enrollment %d: %w", enrollmentID, err)
	}
	course, err := e.store.GetCourse(enrollment.CourseID)
	if err != nil {
		return nil, fmt.Errorf("course %d: %w", enrollment.CourseID, err)
	}

	lessons := course.LessonsCount
	if lessons < 1 {
		lessons = 1
	}
	completed := newProgress >= 100
	currentLesson := (newProgress*lessons + 99) / 100 // ceil

	updated, err := e.store.UpdateEnrollmentProgress(enrollmentID, newProgress, completed, currentLesson)
	if err != nil {
		return nil, err
	}

	result := &ProgressResult{Enrollment: updated}
	if newProgress > 0 && newProgress%10 == 0 {
		result.XPAwarded, _ = e.addXP(enrollment.UserID, progressXPReward)
	}

	e.evaluateBadges(enrollment.UserID, ProgressAdvanced{
		UserID:       enrollment.UserID,
		EnrollmentID: enrollmentID,
		Progress:     newProgress,
		Completed:    completed,
	})
	return result, nil
}
