package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevated/models"
)

func seedQuiz(t *testing.T, engine *Engine, xpReward, questionCount int) *models.Quiz {
	t.Helper()
	quiz := &models.Quiz{
		Title:           "JavaScript Basics",
		Description:     "Fundamentals check",
		XPReward:        xpReward,
		DifficultyLevel: "Beginner",
	}
	require.NoError(t, engine.Store().CreateQuiz(quiz))
	for i := 0; i < questionCount; i++ {
		require.NoError(t, engine.Store().CreateQuizQuestion(&models.QuizQuestion{
			QuizID:        quiz.ID,
			Question:      "sample",
			OptionA:       "a", OptionB: "b", OptionC: "c", OptionD: "d",
			CorrectOption: "A",
		}))
	}
	return quiz
}

func TestGradeQuizCountsMatches(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	quiz := seedQuiz(t, engine, 25, 10)

	questions, err := engine.Store().GetQuizQuestions(quiz.ID)
	require.NoError(t, err)

	answers := make(map[uint]string)
	for i, q := range questions {
		if i < 7 {
			answers[q.ID] = "A"
		} else {
			answers[q.ID] = "B"
		}
	}
	score, total, err := engine.GradeQuiz(quiz.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, 7, score)
	assert.Equal(t, 10, total)
}

func TestGradeQuizLabelsMatchExactly(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	quiz := seedQuiz(t, engine, 25, 4)

	questions, err := engine.Store().GetQuizQuestions(quiz.ID)
	require.NoError(t, err)

	// A lowercase label is not the stored option and scores nothing.
	answers := make(map[uint]string)
	for _, q := range questions {
		answers[q.ID] = "a"
	}
	score, total, err := engine.GradeQuiz(quiz.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.Equal(t, 4, total)
}

func TestGradeQuizUnansweredCountWrong(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	quiz := seedQuiz(t, engine, 25, 10)

	score, total, err := engine.GradeQuiz(quiz.ID, map[uint]string{})
	require.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.Equal(t, 10, total)
}

func TestSubmitQuizProportionalXP(t *testing.T) {
	engine, _, user, _ := newTestEngine(t)
	quiz := seedQuiz(t, engine, 25, 10)

	result, err := engine.SubmitQuiz(user.ID, quiz.ID, 7, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 17, result.XPAwarded) // floor(0.7 * 25)
	assert.Equal(t, 17, result.CurrentXP)
	assert.Equal(t, 7, result.Submission.Score)
	assert.Equal(t, 10, result.Submission.TotalQuestions)
	assert.Empty(t, result.NewBadges)
}

func TestSubmitQuizMinimumParticipationReward(t *testing.T) {
	engine, _, user, _ := newTestEngine(t)
	quiz := seedQuiz(t, engine, 30, 20)

	result, err := engine.SubmitQuiz(user.ID, quiz.ID, 1, 20, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, result.XPAwarded) // floor(0.05*30)=1, bumped to 5
}

func TestSubmitQuizZeroScoreZeroXP(t *testing.T) {
	engine, st, user, _ := newTestEngine(t)
	quiz := seedQuiz(t, engine, 60, 20)

	result, err := engine.SubmitQuiz(user.ID, quiz.ID, 0, 20, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.XPAwarded)
	assert.Equal(t, 0, userXP(t, st, user.ID))
}

func TestSubmitQuizPerfectScoreBadge(t *testing.T) {
	engine, _, user, _ := newTestEngine(t)
	quiz := seedQuiz(t, engine, 30, 5)

	result, err := engine.SubmitQuiz(user.ID, quiz.ID, 5, 5, nil)
	require.NoError(t, err)
	require.Len(t, result.NewBadges, 1)
	assert.Equal(t, "Quiz Master", result.NewBadges[0].Name)

	// A second perfect run stays idempotent.
	again, err := engine.SubmitQuiz(user.ID, quiz.ID, 5, 5, nil)
	require.NoError(t, err)
	assert.Empty(t, again.NewBadges)

	userBadges, err := engine.Store().GetUserBadges(user.ID)
	require.NoError(t, err)
	require.Len(t, userBadges, 1)
}

func TestSubmitQuizNextChallengeHint(t *testing.T) {
	engine, _, user, _ := newTestEngine(t)
	quiz := seedQuiz(t, engine, 30, 5)

	challenge := &models.CompilerChallenge{
		Title:          "Hello World",
		Description:    "First program",
		Instructions:   "Return the greeting",
		StartingCode:   "function helloWorld() {}\n",
		QuizID:         &quiz.ID,
		ExpectedOutput: "Hello, World!",
		Difficulty:     "Beginner",
		Language:       "javascript",
	}
	require.NoError(t, engine.Store().CreateCompilerChallenge(challenge))

	result, err := engine.SubmitQuiz(user.ID, quiz.ID, 3, 5, nil)
	require.NoError(t, err)
	require.NotNil(t, result.NextChallenge)
	assert.Equal(t, challenge.ID, result.NextChallenge.ID)
}

func TestSubmitQuizInvalidScore(t *testing.T) {
	engine, _, user, _ := newTestEngine(t)
	quiz := seedQuiz(t, engine, 30, 5)

	_, err := engine.SubmitQuiz(user.ID, quiz.ID, 6, 5, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = engine.SubmitQuiz(user.ID, quiz.ID, 1, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
