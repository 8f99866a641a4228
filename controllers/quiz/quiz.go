package quizController

import (
	"log"
	"math/rand"

	"github.com/gofiber/fiber/v2"

	"elevated/gamification"
	"elevated/middleware"
	"elevated/models"
	quizValidator "elevated/validators/quiz"
)

// clientQuestion is a question as served to a quiz taker. Correct answers
// never leave the server before submission.
type clientQuestion struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
}

// shuffleForClient strips the correct options and returns every question
// exactly once, in a fresh random order per call.
func shuffleForClient(questions []models.QuizQuestion) []clientQuestion {
	served := make([]clientQuestion, 0, len(questions))
	for _, q := range questions {
		served = append(served, clientQuestion{
			ID: q.ID, Question: q.Question,
			OptionA: q.OptionA, OptionB: q.OptionB, OptionC: q.OptionC, OptionD: q.OptionD,
		})
	}
	rand.Shuffle(len(served), func(i, j int) {
		served[i], served[j] = served[j], served[i]
	})
	return served
}

// List returns all quizzes.
func List(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizzes, err := engine.Store().GetQuizzes()
		if err != nil {
			log.Printf("Error fetching quizzes: %v", err)
			return middleware.ErrorResponse(c, err, "Failed to fetch quizzes!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully.", quizzes)
	}
}

// Detail returns a single quiz by ID.
func Detail(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, err := c.ParamsInt("id")
		if err != nil || quizID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
		}

		quiz, err := engine.Store().GetQuiz(uint(quizID))
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to fetch quiz!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully.", quiz)
	}
}

// Questions returns the quiz's questions in a fresh random order on every
// request, so retakes see a different sequence.
func Questions(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, err := c.ParamsInt("id")
		if err != nil || quizID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
		}

		if _, err := engine.Store().GetQuiz(uint(quizID)); err != nil {
			return middleware.ErrorResponse(c, err, "Failed to fetch quiz!")
		}

		questions, err := engine.Store().GetQuizQuestions(uint(quizID))
		if err != nil {
			log.Printf("Error fetching questions for quiz %d: %v", quizID, err)
			return middleware.ErrorResponse(c, err, "Failed to fetch quiz questions!")
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz questions fetched successfully.", shuffleForClient(questions))
	}
}

// Submit records a quiz attempt. When an answers map is supplied the score
// is graded server side; otherwise the provided score and total are trusted.
func Submit(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		reqData := c.Locals("validatedSubmission").(*quizValidator.SubmitQuizRequest)

		score, total := reqData.Score, reqData.Total
		if len(reqData.Answers) > 0 {
			var err error
			score, total, err = engine.GradeQuiz(reqData.QuizID, reqData.Answers)
			if err != nil {
				return middleware.ErrorResponse(c, err, "Failed to grade quiz!")
			}
		}

		result, err := engine.SubmitQuiz(userID, reqData.QuizID, score, total, reqData.Answers)
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to submit quiz!")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz submitted successfully.", result)
	}
}

// Submissions lists the authenticated user's past attempts.
func Submissions(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)

		submissions, err := engine.Store().GetQuizSubmissions(userID)
		if err != nil {
			log.Printf("Error fetching submissions for user %d: %v", userID, err)
			return middleware.ErrorResponse(c, err, "Failed to fetch submissions!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully.", submissions)
	}
}
