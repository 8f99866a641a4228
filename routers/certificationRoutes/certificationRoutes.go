package certificationRoutes

import (
	"github.com/gofiber/fiber/v2"

	certificationControllers "elevated/controllers/certification"
	"elevated/gamification"
	"elevated/middleware"
	certificationValidators "elevated/validators/certification"
)

func SetupCertificationRoutes(app *fiber.App, engine *gamification.Engine) {
	certificationGroup := app.Group("/certification")

	certificationGroup.Post("/create", certificationValidators.Create(), middleware.JWTMiddleware, certificationControllers.Create(engine))
}
