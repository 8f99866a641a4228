package sessionRoutes

import (
	"github.com/gofiber/fiber/v2"

	sessionControllers "elevated/controllers/session"
	"elevated/gamification"
)

func SetupSessionRoutes(app *fiber.App, engine *gamification.Engine) {
	sessionGroup := app.Group("/session")

	sessionGroup.Get("/list", sessionControllers.List(engine))
	sessionGroup.Get("/upcoming", sessionControllers.Upcoming(engine))
	sessionGroup.Get("/:id", sessionControllers.Detail(engine))
}
