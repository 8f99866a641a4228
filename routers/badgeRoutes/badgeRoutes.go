package badgeRoutes

import (
	"github.com/gofiber/fiber/v2"

	badgeControllers "elevated/controllers/badge"
	"elevated/gamification"
)

func SetupBadgeRoutes(app *fiber.App, engine *gamification.Engine) {
	badgeGroup := app.Group("/badge")

	badgeGroup.Get("/list", badgeControllers.List(engine))
}
