package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "elevated/controllers/auth"
	"elevated/gamification"
	authValidators "elevated/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, engine *gamification.Engine) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup(engine))
	authGroup.Post("/login", authValidators.Login(), authControllers.Login(engine))
}
