package compilerRoutes

import (
	"github.com/gofiber/fiber/v2"

	compilerControllers "elevated/controllers/compiler"
	"elevated/gamification"
	"elevated/middleware"
	compilerValidators "elevated/validators/compiler"
)

func SetupCompilerRoutes(app *fiber.App, engine *gamification.Engine) {
	compilerGroup := app.Group("/compiler")

	compilerGroup.Get("/challenges", compilerControllers.Challenges(engine))
	compilerGroup.Get("/challenges/:id", compilerControllers.ChallengeDetail(engine))
	compilerGroup.Get("/solutions", middleware.JWTMiddleware, compilerControllers.Solutions(engine))
	compilerGroup.Post("/submit", compilerValidators.Submit(), middleware.JWTMiddleware, compilerControllers.Submit(engine))
}
