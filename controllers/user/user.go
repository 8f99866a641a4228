package userController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"elevated/gamification"
	"elevated/middleware"
)

// Profile returns the authenticated user with derived level fields.
func Profile(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)

		user, err := engine.Store().GetUser(userID)
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to fetch profile!")
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", fiber.Map{
			"user":                   user,
			"level":                  gamification.Level(user.XP),
			"xp_for_next_level":      gamification.XPForNextLevel(gamification.Level(user.XP)),
			"progress_to_next_level": gamification.ProgressToNextLevel(user.XP),
		})
	}
}

// Enrollments lists the authenticated user's enrollments with courses.
func Enrollments(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)

		enrollments, err := engine.Store().GetEnrollments(userID)
		if err != nil {
			log.Printf("Error fetching enrollments for user %d: %v", userID, err)
			return middleware.ErrorResponse(c, err, "Failed to fetch enrollments!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", enrollments)
	}
}

// Badges lists the badges the authenticated user has earned.
func Badges(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)

		userBadges, err := engine.Store().GetUserBadges(userID)
		if err != nil {
			log.Printf("Error fetching badges for user %d: %v", userID, err)
			return middleware.ErrorResponse(c, err, "Failed to fetch badges!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Badges fetched successfully.", userBadges)
	}
}

// Certifications lists the authenticated user's issued certificates.
func Certifications(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)

		certifications, err := engine.Store().GetCertifications(userID)
		if err != nil {
			log.Printf("Error fetching certifications for user %d: %v", userID, err)
			return middleware.ErrorResponse(c, err, "Failed to fetch certifications!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certifications fetched successfully.", certifications)
	}
}
