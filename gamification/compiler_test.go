package gamification

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevated/models"
	"elevated/store"
)

func seedChallenge(t *testing.T, engine *Engine, language, expected string) *models.CompilerChallenge {
	t.Helper()
	challenge := &models.CompilerChallenge{
		Title:          "Hello World",
		Description:    "First program",
		Instructions:   "Return the greeting",
		StartingCode:   "function helloWorld() {}\n",
		ExpectedOutput: expected,
		Difficulty:     "Beginner",
		Language:       language,
	}
	require.NoError(t, engine.Store().CreateCompilerChallenge(challenge))
	return challenge
}

func TestJudgeSubstringContract(t *testing.T) {
	challenge := &models.CompilerChallenge{ExpectedOutput: "Hello, World!", Language: "javascript"}

	// Passes even with no executable logic, as long as the literal appears.
	passed, output := Judge(challenge, `// prints Hello, World! eventually`)
	assert.True(t, passed)
	assert.Equal(t, "Hello, World!", output)

	passed, output = Judge(challenge, `console.log("hi")`)
	assert.False(t, passed)
	assert.Equal(t, "TypeError: Cannot read property 'undefined' of null", output)
}

func TestJudgeCannedErrorsByLanguage(t *testing.T) {
	for language, want := range map[string]string{
		"javascript": "TypeError: Cannot read property 'undefined' of null",
		"python":     "IndentationError: unexpected indent",
		"go":         "Compilation error",
	} {
		challenge := &models.CompilerChallenge{ExpectedOutput: "nope", Language: language}
		passed, output := Judge(challenge, "unrelated")
		assert.False(t, passed)
		assert.Equal(t, want, output, "language %s", language)
	}
}

func TestSubmitSolutionPassAwardsXP(t *testing.T) {
	engine, st, user, _ := newTestEngine(t)
	challenge := seedChallenge(t, engine, "javascript", "Hello, World!")

	result, err := engine.SubmitSolution(user.ID, challenge.ID, `return "Hello, World!"`)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, 15, result.XPAwarded)
	assert.Equal(t, 15, userXP(t, st, user.ID))
	assert.True(t, result.Solution.Passed)
}

func TestSubmitSolutionFailRecordsAttempt(t *testing.T) {
	engine, st, user, _ := newTestEngine(t)
	challenge := seedChallenge(t, engine, "python", "[4, 16, 36]")

	result, err := engine.SubmitSolution(user.ID, challenge.ID, "pass")
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, "IndentationError: unexpected indent", result.Output)
	assert.Equal(t, 0, result.XPAwarded)
	assert.Equal(t, 0, userXP(t, st, user.ID))

	solutions, err := st.GetCompilerSolutions(user.ID)
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.False(t, solutions[0].Passed)
}

func TestCodeNinjaBadgeOnExactThirdPass(t *testing.T) {
	engine, _, user, _ := newTestEngine(t)

	for i := 1; i <= 4; i++ {
		expected := fmt.Sprintf("output-%d", i)
		challenge := seedChallenge(t, engine, "javascript", expected)
		result, err := engine.SubmitSolution(user.ID, challenge.ID, "print "+expected)
		require.NoError(t, err)
		require.True(t, result.Passed)

		if i == 3 {
			require.Len(t, result.NewBadges, 1, "badge must fire on the 3rd pass")
			assert.Equal(t, "Code Ninja", result.NewBadges[0].Name)
		} else {
			assert.Empty(t, result.NewBadges, "pass %d must not award", i)
		}
	}
}

func TestSubmitSolutionUnknownChallenge(t *testing.T) {
	engine, _, user, _ := newTestEngine(t)
	_, err := engine.SubmitSolution(user.ID, 999, "code")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
