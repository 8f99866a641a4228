package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseControllers "elevated/controllers/course"
	"elevated/gamification"
	"elevated/middleware"
	courseValidators "elevated/validators/course"
)

func SetupCourseRoutes(app *fiber.App, engine *gamification.Engine) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", courseControllers.List(engine))
	courseGroup.Post("/create", courseValidators.Create(), middleware.JWTMiddleware, courseControllers.Create(engine))
	courseGroup.Get("/:id", courseControllers.Detail(engine))
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, courseControllers.Enroll(engine))

	app.Put("/enrollment/:id/progress", middleware.JWTMiddleware, courseControllers.UpdateProgress(engine))
}
