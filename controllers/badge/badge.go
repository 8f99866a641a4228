package badgeController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"elevated/gamification"
	"elevated/middleware"
)

// List returns the full badge catalog.
func List(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		badges, err := engine.Store().GetBadges()
		if err != nil {
			log.Printf("Error fetching badges: %v", err)
			return middleware.ErrorResponse(c, err, "Failed to fetch badges!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Badges fetched successfully.", badges)
	}
}
