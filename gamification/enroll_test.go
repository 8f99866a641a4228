package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevated/store"
)

func TestEnrollAwardsXPAndFirstBadge(t *testing.T) {
	engine, st, user, course := newTestEngine(t)

	result, err := engine.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, 10, result.XPAwarded)
	assert.Equal(t, 10, userXP(t, st, user.ID))
	assert.Equal(t, 0, result.Enrollment.Progress)
	assert.Equal(t, 1, result.Enrollment.CurrentLesson)
	assert.False(t, result.Enrollment.Completed)

	require.Len(t, result.NewBadges, 1)
	assert.Equal(t, "Course Explorer", result.NewBadges[0].Name)
}

func TestEnrollRejectsDuplicatePair(t *testing.T) {
	engine, _, user, course := newTestEngine(t)

	_, err := engine.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = engine.Enroll(user.ID, course.ID)
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestEnrollUnknownUserOrCourse(t *testing.T) {
	engine, _, user, course := newTestEngine(t)

	_, err := engine.Enroll(999, course.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = engine.Enroll(user.ID, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSecondCourseGrantsNoExplorerBadge(t *testing.T) {
	engine, st, user, course := newTestEngine(t)

	second := course
	other := *second
	other.ID = 0
	other.Title = "Python for Beginners"
	require.NoError(t, st.CreateCourse(&other))

	first, err := engine.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	require.Len(t, first.NewBadges, 1)

	next, err := engine.Enroll(user.ID, other.ID)
	require.NoError(t, err)
	assert.Empty(t, next.NewBadges)
	assert.Equal(t, 20, userXP(t, st, user.ID))
}
