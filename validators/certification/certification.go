package certificationValidator

import (
	"github.com/gofiber/fiber/v2"

	"elevated/middleware"
)

// CreateCertificationRequest is the validated certification request body.
type CreateCertificationRequest struct {
	CourseID uint   `json:"course_id" validate:"required"`
	Title    string `json:"title" validate:"required,max=200"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCertificationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}
		c.Locals("validatedCertification", reqData)
		return c.Next()
	}
}
