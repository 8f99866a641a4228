package quizRoutes

import (
	"github.com/gofiber/fiber/v2"

	quizControllers "elevated/controllers/quiz"
	"elevated/gamification"
	"elevated/middleware"
	quizValidators "elevated/validators/quiz"
)

func SetupQuizRoutes(app *fiber.App, engine *gamification.Engine) {
	quizGroup := app.Group("/quiz")

	quizGroup.Get("/list", quizControllers.List(engine))
	quizGroup.Get("/submissions", middleware.JWTMiddleware, quizControllers.Submissions(engine))
	quizGroup.Post("/submit", quizValidators.Submit(), middleware.JWTMiddleware, quizControllers.Submit(engine))
	quizGroup.Get("/:id", quizControllers.Detail(engine))
	quizGroup.Get("/:id/questions", quizControllers.Questions(engine))
}
