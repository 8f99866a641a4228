package chatRoutes

import (
	"github.com/gofiber/fiber/v2"

	chatControllers "elevated/controllers/chat"
	"elevated/gamification"
	"elevated/middleware"
	chatValidators "elevated/validators/chat"
)

func SetupChatRoutes(app *fiber.App, engine *gamification.Engine) {
	chatGroup := app.Group("/chat")

	chatGroup.Get("/messages", chatControllers.Messages(engine))
	chatGroup.Post("/messages", chatValidators.PostMessage(), middleware.JWTMiddleware, chatControllers.PostMessage(engine))
}
