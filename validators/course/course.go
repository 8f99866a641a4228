package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	"elevated/middleware"
)

// CreateCourseRequest is the validated course creation body. Rating is
// stored as a whole number scaled by ten, so 48 means 4.8 stars.
type CreateCourseRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=200"`
	Description  string `json:"description" validate:"required"`
	Category     string `json:"category" validate:"required"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	Rating       int    `json:"rating" validate:"gte=0,lte=50"`
	LessonsCount int    `json:"lessons_count" validate:"gte=0"`
	XPReward     int    `json:"xp_reward" validate:"gte=0"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
