package memstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevated/models"
	"elevated/store"
)

func TestAddUserXPConcurrent(t *testing.T) {
	st := New()
	user := &models.User{Username: "racer", Password: "x"}
	require.NoError(t, st.CreateUser(user))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.AddUserXP(user.ID, 10)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	updated, err := st.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 500, updated.XP, "increments must not be lost")
}

func TestAwardBadgeConcurrentIdempotence(t *testing.T) {
	st := New()
	user := &models.User{Username: "collector", Password: "x"}
	require.NoError(t, st.CreateUser(user))
	badge := &models.Badge{Name: "Course Explorer", Description: "d", Requirement: "enroll:1"}
	require.NoError(t, st.CreateBadge(badge))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.AwardBadge(user.ID, badge.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	userBadges, err := st.GetUserBadges(user.ID)
	require.NoError(t, err)
	assert.Len(t, userBadges, 1, "exactly one row per (user, badge) pair")
}

func TestCreateEnrollmentUniquePair(t *testing.T) {
	st := New()
	user := &models.User{Username: "student", Password: "x"}
	require.NoError(t, st.CreateUser(user))
	course := &models.Course{Title: "c", Description: "d", Category: "cat"}
	require.NoError(t, st.CreateCourse(course))

	first := &models.Enrollment{UserID: user.ID, CourseID: course.ID, CurrentLesson: 1}
	require.NoError(t, st.CreateEnrollment(first))

	dup := &models.Enrollment{UserID: user.ID, CourseID: course.ID, CurrentLesson: 1}
	assert.ErrorIs(t, st.CreateEnrollment(dup), store.ErrConflict)
}

func TestGetUserByUsernameCaseInsensitive(t *testing.T) {
	st := New()
	user := &models.User{Username: "Madhavan", Password: "x"}
	require.NoError(t, st.CreateUser(user))

	found, err := st.GetUserByUsername("madhavan")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = st.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestChallengeForQuizLookup(t *testing.T) {
	st := New()
	quizID := uint(7)
	challenge := &models.CompilerChallenge{
		Title: "t", Description: "d", Instructions: "i", StartingCode: "s",
		QuizID: &quizID, ExpectedOutput: "x", Difficulty: "Beginner", Language: "javascript",
	}
	require.NoError(t, st.CreateCompilerChallenge(challenge))

	found, err := st.GetChallengeForQuiz(quizID)
	require.NoError(t, err)
	assert.Equal(t, challenge.ID, found.ID)

	_, err = st.GetChallengeForQuiz(99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
