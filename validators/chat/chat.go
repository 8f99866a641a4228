package chatValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"elevated/middleware"
)

// PostMessageRequest is the validated chat message body.
type PostMessageRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// PostMessage validator middleware
func PostMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PostMessageRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Message = strings.TrimSpace(reqData.Message)
		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}
		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}
