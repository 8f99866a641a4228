package gamification

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"elevated/models"
	"elevated/store"
)

const minParticipationXP = 5

// QuizResult aggregates a recorded submission with its XP outcome and the
// advisory follow-on challenge, if the quiz has one.
type QuizResult struct {
	Submission    *models.QuizSubmission    `json:"submission"`
	XPAwarded     int                       `json:"xp_awarded"`
	CurrentXP     int                       `json:"current_xp"`
	NextChallenge *models.CompilerChallenge `json:"next_challenge"`
	NewBadges     []models.Badge            `json:"new_badges,omitempty"`
}

// GradeQuiz scores an answer map against the quiz's question keys. Total is
// the full question count of the quiz: unanswered questions count as wrong.
func (e *Engine) GradeQuiz(quizID uint, answers map[uint]string) (score, total int, err error) {
	if _, err := e.store.GetQuiz(quizID); err != nil {
		return 0, 0, fmt.Errorf("quiz %d: %w", quizID, err)
	}
	questions, err := e.store.GetQuizQuestions(quizID)
	if err != nil {
		return 0, 0, err
	}
	// Labels must match the stored option exactly; clients send the
	// letter as served ("A".."D").
	for _, question := range questions {
		if answers[question.ID] == question.CorrectOption {
			score++
		}
	}
	return score, len(questions), nil
}

// SubmitQuiz records an immutable submission and awards proportional XP:
// floor(score/total * xpReward), bumped to a minimum participation reward of
// 5 when the score is positive. A zero score earns nothing. A perfect score
// triggers the quiz:perfect badge rule.
func (e *Engine) SubmitQuiz(userID, quizID uint, score, total int, answers map[uint]string) (*QuizResult, error) {
	user, err := e.store.GetUser(userID)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", userID, err)
	}
	quiz, err := e.store.GetQuiz(quizID)
	if err != nil {
		return nil, fmt.Errorf("quiz %d: %w", quizID, err)
	}
	if total <= 0 || score < 0 || score > total {
		return nil, fmt.Errorf("score %d/%d: %w", score, total, ErrInvalidArgument)
	}

	submission := &models.QuizSubmission{
		UserID:         userID,
		QuizID:         quizID,
		Score:          score,
		TotalQuestions: total,
		Completed:      true,
	}
	if len(answers) > 0 {
		if raw, err := json.Marshal(answers); err == nil {
			submission.Answers = raw
		}
	}
	if err := e.store.CreateQuizSubmission(submission); err != nil {
		return nil, err
	}

	xpToAward := score * quiz.XPReward / total
	if score > 0 && xpToAward < minParticipationXP {
		xpToAward = minParticipationXP
	}

	result := &QuizResult{Submission: submission, CurrentXP: user.XP}
	var currentXP int
	result.XPAwarded, currentXP = e.addXP(userID, xpToAward)
	if currentXP >= 0 {
		result.CurrentXP = currentXP
	}

	result.NewBadges = e.evaluateBadges(userID, QuizGraded{
		UserID: userID,
		QuizID: quizID,
		Score:  score,
		Total:  total,
	})

	challenge, err := e.store.GetChallengeForQuiz(quizID)
	switch {
	case err == nil:
		result.NextChallenge = challenge
	case !errors.Is(err, store.ErrNotFound):
		log.Printf("[GAMIFICATION] Next-challenge lookup for quiz %d failed: %v", quizID, err)
	}
	return result, nil
}
