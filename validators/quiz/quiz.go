package quizValidator

import (
	"github.com/gofiber/fiber/v2"

	"elevated/middleware"
)

// SubmitQuizRequest accepts either a full answers map, keyed by question
// ID, or a pre-computed score and total. When Answers is present it wins
// and the score is computed server side.
type SubmitQuizRequest struct {
	QuizID  uint            `json:"quiz_id" validate:"required"`
	Answers map[uint]string `json:"answers"`
	Score   int             `json:"score" validate:"gte=0"`
	Total   int             `json:"total" validate:"gte=0"`
}

// Submit validator middleware
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		errors := make(map[string]string)
		if len(reqData.Answers) == 0 {
			if reqData.Total <= 0 {
				errors["total"] = "Provide answers or a score with a positive total!"
			}
			if reqData.Score > reqData.Total {
				errors["score"] = "Score cannot exceed total!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
