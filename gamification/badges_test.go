package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequirement(t *testing.T) {
	cases := []struct {
		in   string
		want Requirement
	}{
		{"login:1", Requirement{Kind: ReqLogin, Count: 1}},
		{"enroll:1", Requirement{Kind: ReqEnroll, Count: 1}},
		{"lessons:5", Requirement{Kind: ReqLessons, Count: 5}},
		{"quiz:perfect", Requirement{Kind: ReqQuizPerfect}},
		{"compiler:3", Requirement{Kind: ReqCompilerPassCount, Count: 3}},
		{"livesession:1", Requirement{Kind: ReqLiveSession, Count: 1}},
		{"course:1:complete", Requirement{Kind: ReqCourseComplete, CourseID: 1}},
	}
	for _, tc := range cases {
		got, err := ParseRequirement(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseRequirementRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "enroll", "enroll:zero", "enroll:0", "quiz:imperfect", "course:x:complete", "what:is:this:even"} {
		_, err := ParseRequirement(in)
		assert.Error(t, err, in)
	}
}

func TestBadgeAwardIdempotence(t *testing.T) {
	_, st, user, _ := newTestEngine(t)

	badges, err := st.GetBadges()
	require.NoError(t, err)
	badge := badges[0]

	first, err := st.AwardBadge(user.ID, badge.ID)
	require.NoError(t, err)
	second, err := st.AwardBadge(user.ID, badge.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	userBadges, err := st.GetUserBadges(user.ID)
	require.NoError(t, err)
	assert.Len(t, userBadges, 1)
}

func TestUnwiredRequirementKindsNeverFire(t *testing.T) {
	// login:N, lessons:N, livesession:N and course:<id>:complete are in the
	// catalog but no trigger emits their events.
	for _, req := range []Requirement{
		{Kind: ReqLogin, Count: 1},
		{Kind: ReqLessons, Count: 5},
		{Kind: ReqLiveSession, Count: 1},
		{Kind: ReqCourseComplete, CourseID: 1},
	} {
		assert.False(t, satisfied(req, EnrollmentCreated{EnrollmentCount: 1}))
		assert.False(t, satisfied(req, QuizGraded{Score: 5, Total: 5}))
		assert.False(t, satisfied(req, CompilerSolutionGraded{Passed: true, PassedCount: 1}))
		assert.False(t, satisfied(req, ProgressAdvanced{Progress: 100, Completed: true}))
	}
}

func TestCompilerRequirementExactMatch(t *testing.T) {
	req := Requirement{Kind: ReqCompilerPassCount, Count: 3}
	assert.False(t, satisfied(req, CompilerSolutionGraded{Passed: true, PassedCount: 2}))
	assert.True(t, satisfied(req, CompilerSolutionGraded{Passed: true, PassedCount: 3}))
	// Equality, not >=: a 4th pass no longer satisfies.
	assert.False(t, satisfied(req, CompilerSolutionGraded{Passed: true, PassedCount: 4}))
	assert.False(t, satisfied(req, CompilerSolutionGraded{Passed: false, PassedCount: 3}))
}
