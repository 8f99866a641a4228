package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	userControllers "elevated/controllers/user"
	"elevated/gamification"
	"elevated/middleware"
)

func SetupUserRoutes(app *fiber.App, engine *gamification.Engine) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", userControllers.Profile(engine))
	userGroup.Get("/enrollments", userControllers.Enrollments(engine))
	userGroup.Get("/badges", userControllers.Badges(engine))
	userGroup.Get("/certifications", userControllers.Certifications(engine))
}
