package courseController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"elevated/gamification"
	"elevated/middleware"
	"elevated/models"
	courseValidator "elevated/validators/course"
)

// List returns the full course catalog.
func List(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courses, err := engine.Store().GetCourses()
		if err != nil {
			log.Printf("Error fetching courses: %v", err)
			return middleware.ErrorResponse(c, err, "Failed to fetch courses!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
	}
}

// Detail returns a single course by ID.
func Detail(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := c.ParamsInt("id")
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		course, err := engine.Store().GetCourse(uint(courseID))
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to fetch course!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
	}
}

// Create adds a course to the catalog.
func Create(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)

		course := models.Course{
			Title:        reqData.Title,
			Description:  reqData.Description,
			Category:     reqData.Category,
			ThumbnailURL: reqData.ThumbnailURL,
			Rating:       reqData.Rating,
			LessonsCount: reqData.LessonsCount,
			XPReward:     reqData.XPReward,
		}
		if course.XPReward == 0 {
			course.XPReward = 10
		}

		if err := engine.Store().CreateCourse(&course); err != nil {
			log.Printf("Error creating course: %v", err)
			return middleware.ErrorResponse(c, err, "Failed to create course!")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
	}
}

// Enroll enrolls the authenticated user into the course, credits the
// enrollment XP and reports any badges earned by the action.
func Enroll(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		courseID, err := c.ParamsInt("id")
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		result, err := engine.Enroll(userID, uint(courseID))
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to enroll in course!")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully.", result)
	}
}

// UpdateProgress advances the enrollment's progress percentage. Decile
// landings credit XP; completion is derived server side.
func UpdateProgress(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		enrollmentID, err := c.ParamsInt("id")
		if err != nil || enrollmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
		}

		reqData := new(struct {
			Progress int `json:"progress"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Enrollments are user-owned; reject cross-user updates.
		enrollment, err := engine.Store().GetEnrollmentByID(uint(enrollmentID))
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to update progress!")
		}
		if enrollment.UserID != userID {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this enrollment!", nil)
		}

		result, err := engine.AdvanceProgress(uint(enrollmentID), reqData.Progress)
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to update progress!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", result)
	}
}
