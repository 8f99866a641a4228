package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevated/store"
)

func TestAdvanceProgressBounds(t *testing.T) {
	engine, _, user, course := newTestEngine(t)
	enrolled, err := engine.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	for _, p := range []int{-1, -50, 101, 250} {
		_, err := engine.AdvanceProgress(enrolled.Enrollment.ID, p)
		assert.ErrorIs(t, err, ErrInvalidArgument, "progress %d must be rejected", p)
	}

	_, err = engine.AdvanceProgress(999, 50)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAdvanceProgressDerivedFields(t *testing.T) {
	engine, _, user, course := newTestEngine(t)
	enrolled, err := engine.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	result, err := engine.AdvanceProgress(enrolled.Enrollment.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, result.Enrollment.Progress)
	assert.False(t, result.Enrollment.Completed)
	assert.Equal(t, 18, result.Enrollment.CurrentLesson) // ceil(0.5 * 36)

	result, err = engine.AdvanceProgress(enrolled.Enrollment.ID, 100)
	require.NoError(t, err)
	assert.True(t, result.Enrollment.Completed)
	assert.Equal(t, course.LessonsCount, result.Enrollment.CurrentLesson)
}

func TestDecileXPRule(t *testing.T) {
	engine, st, user, course := newTestEngine(t)
	enrolled, err := engine.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	base := userXP(t, st, user.ID)

	// 20 -> 30: lands on a multiple of 10
	_, err = engine.AdvanceProgress(enrolled.Enrollment.ID, 20)
	require.NoError(t, err)
	result, err := engine.AdvanceProgress(enrolled.Enrollment.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 10, result.XPAwarded)

	// 20 -> 25: not a multiple, nothing granted
	result, err = engine.AdvanceProgress(enrolled.Enrollment.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, 0, result.XPAwarded)

	// 95 -> 100: 100 is a multiple of 10
	_, err = engine.AdvanceProgress(enrolled.Enrollment.ID, 95)
	require.NoError(t, err)
	result, err = engine.AdvanceProgress(enrolled.Enrollment.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 10, result.XPAwarded)

	// +10 for landing on 20, 30 and 100; nothing for 25 and 95
	assert.Equal(t, base+30, userXP(t, st, user.ID))
}

func TestRepeatedDecileGrantsAgain(t *testing.T) {
	// The layer does not deduplicate decile landings; avoiding duplicate
	// submissions is the caller's burden.
	engine, _, user, course := newTestEngine(t)
	enrolled, err := engine.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		result, err := engine.AdvanceProgress(enrolled.Enrollment.ID, 30)
		require.NoError(t, err)
		assert.Equal(t, 10, result.XPAwarded)
	}
}

func TestProgressMayDecrease(t *testing.T) {
	// No monotonicity check: lowering progress is accepted, e.g. for
	// admin corrections.
	engine, _, user, course := newTestEngine(t)
	enrolled, err := engine.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = engine.AdvanceProgress(enrolled.Enrollment.ID, 80)
	require.NoError(t, err)
	result, err := engine.AdvanceProgress(enrolled.Enrollment.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, result.Enrollment.Progress)
	assert.False(t, result.Enrollment.Completed)
}
