package compilerValidator

import (
	"github.com/gofiber/fiber/v2"

	"elevated/middleware"
)

// SubmitSolutionRequest is the validated challenge submission body.
type SubmitSolutionRequest struct {
	ChallengeID uint   `json:"challenge_id" validate:"required"`
	Code        string `json:"code" validate:"required"`
}

// Submit validator middleware
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitSolutionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}
		c.Locals("validatedSolution", reqData)
		return c.Next()
	}
}
