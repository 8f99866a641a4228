package gamification

import (
	"testing"

	"github.com/stretchr/testify/require"

	"elevated/models"
	"elevated/store"
	"elevated/store/memstore"
)

// newTestEngine seeds a memstore with one user, one course and the badge
// catalog, and returns the engine plus the seeded records.
func newTestEngine(t *testing.T) (*Engine, *memstore.MemStore, *models.User, *models.Course) {
	t.Helper()
	st := memstore.New()

	user := &models.User{Username: "madhavan", Password: "x", Email: "madhavan@example.com"}
	require.NoError(t, st.CreateUser(user))

	course := &models.Course{
		Title:        "Advanced JavaScript",
		Description:  "Closures, prototypes, promises.",
		Category:     "Web Development",
		LessonsCount: 36,
		XPReward:     15,
	}
	require.NoError(t, st.CreateCourse(course))

	for _, badge := range []models.Badge{
		{Name: "First Login", Description: "Logged in for the first time", Requirement: "login:1"},
		{Name: "Course Explorer", Description: "Enrolled in first course", Requirement: "enroll:1"},
		{Name: "Knowledge Seeker", Description: "Completed 5 lessons", Requirement: "lessons:5"},
		{Name: "Quiz Master", Description: "Scored 100% on any quiz", Requirement: "quiz:perfect"},
		{Name: "Code Ninja", Description: "Solved 3 coding challenges", Requirement: "compiler:3"},
		{Name: "JavaScript Ninja", Description: "Completed Advanced JavaScript", Requirement: "course:1:complete"},
	} {
		b := badge
		require.NoError(t, st.CreateBadge(&b))
	}

	engine, err := NewEngine(st)
	require.NoError(t, err)
	return engine, st, user, course
}

func userXP(t *testing.T, st store.Store, userID uint) int {
	t.Helper()
	user, err := st.GetUser(userID)
	require.NoError(t, err)
	return user.XP
}
