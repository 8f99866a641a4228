package gamification

import (
	"fmt"
	"log"
	"strings"

	"elevated/models"
)

const solutionXPReward = 15

// CompileResult mirrors what the editor shows after a run: the output pane,
// the verdict and the stored solution record.
type CompileResult struct {
	Output    string                   `json:"output"`
	Passed    bool                     `json:"passed"`
	Solution  *models.CompilerSolution `json:"solution"`
	XPAwarded int                      `json:"xp_awarded"`
	NewBadges []models.Badge           `json:"new_badges,omitempty"`
}

// Judge is the deliberate execution stub: a solution passes iff the submitted
// code contains the challenge's expected output as a literal substring. On
// failure the output is a canned error keyed by the challenge language, not a
// real diagnostic. There is no sandbox and no interpreter behind this.
func Judge(challenge *models.CompilerChallenge, code string) (passed bool, output string) {
	if strings.Contains(code, challenge.ExpectedOutput) {
		return true, challenge.ExpectedOutput
	}
	switch challenge.Language {
	case "javascript":
		return false, "TypeError: Cannot read property 'undefined' of null"
	case "python":
		return false, "IndentationError: unexpected indent"
	default:
		return false, "Compilation error"
	}
}

// SubmitSolution judges the code, records the attempt and, on a pass, credits
// XP and evaluates the passed-solution-count badge rule (exact count match:
// the badge fires on the Nth pass, not after it).
func (e *Engine) SubmitSolution(userID, challengeID uint, code string) (*CompileResult, error) {
	if _, err := e.store.GetUser(userID); err != nil {
		return nil, fmt.Errorf("user %d: %w", userID, err)
	}
	challenge, err := e.store.GetCompilerChallenge(challengeID)
	if err != nil {
		return nil, fmt.Errorf("challenge %d: %w", challengeID, err)
	}

	passed, output := Judge(challenge, code)

	solution := &models.CompilerSolution{
		UserID:      userID,
		ChallengeID: challengeID,
		Code:        code,
		Passed:      passed,
	}
	if err := e.store.CreateCompilerSolution(solution); err != nil {
		return nil, err
	}

	result := &CompileResult{Output: output, Passed: passed, Solution: solution}
	if !passed {
		return result, nil
	}

	result.XPAwarded, _ = e.addXP(userID, solutionXPReward)

	solutions, err := e.store.GetCompilerSolutions(userID)
	if err != nil {
		log.Printf("[GAMIFICATION] Solution count for user %d unavailable: %v", userID, err)
		return result, nil
	}
	passedCount := 0
	for _, s := range solutions {
		if s.Passed {
			passedCount++
		}
	}
	result.NewBadges = e.evaluateBadges(userID, CompilerSolutionGraded{
		UserID:      userID,
		ChallengeID: challengeID,
		Passed:      true,
		PassedCount: passedCount,
	})
	return result, nil
}
