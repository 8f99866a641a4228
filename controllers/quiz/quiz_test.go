package quizController

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevated/models"
)

func questionBank(count int) []models.QuizQuestion {
	bank := make([]models.QuizQuestion, 0, count)
	for i := 1; i <= count; i++ {
		q := models.QuizQuestion{
			QuizID:        1,
			Question:      fmt.Sprintf("Question %d", i),
			OptionA:       "a", OptionB: "b", OptionC: "c", OptionD: "d",
			CorrectOption: "A",
		}
		q.ID = uint(i)
		bank = append(bank, q)
	}
	return bank
}

func TestShuffleServesAllQuestionsExactlyOnce(t *testing.T) {
	bank := questionBank(20)

	served := shuffleForClient(bank)
	require.Len(t, served, 20)

	seen := make(map[uint]int, len(served))
	for _, q := range served {
		seen[q.ID]++
	}
	for i := 1; i <= 20; i++ {
		assert.Equal(t, 1, seen[uint(i)], "question %d", i)
	}
}

func TestShuffleStripsCorrectOption(t *testing.T) {
	served := shuffleForClient(questionBank(5))

	raw, err := json.Marshal(served)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "correct_option")
}

func TestShuffleReordersAcrossCalls(t *testing.T) {
	bank := questionBank(20)

	ordered := func(served []clientQuestion) bool {
		for i, q := range served {
			if q.ID != uint(i+1) {
				return false
			}
		}
		return true
	}

	// Ten consecutive identity shuffles of 20 items will not happen.
	allOrdered := true
	for i := 0; i < 10; i++ {
		if !ordered(shuffleForClient(bank)) {
			allOrdered = false
			break
		}
	}
	assert.False(t, allOrdered, "expected at least one reordering")
}
