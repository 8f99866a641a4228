package chatController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"elevated/gamification"
	"elevated/middleware"
	"elevated/models"
	chatValidator "elevated/validators/chat"
)

// Messages returns the community chat log, oldest first.
func Messages(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messages, err := engine.Store().GetChatMessages()
		if err != nil {
			log.Printf("Error fetching chat messages: %v", err)
			return middleware.ErrorResponse(c, err, "Failed to fetch messages!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully.", messages)
	}
}

// PostMessage appends a message from the authenticated user to the log.
func PostMessage(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		reqData := c.Locals("validatedMessage").(*chatValidator.PostMessageRequest)

		user, err := engine.Store().GetUser(userID)
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to post message!")
		}

		message := models.ChatMessage{
			UserID:   user.ID,
			Username: user.Username,
			Message:  reqData.Message,
			SentAt:   time.Now(),
		}
		if err := engine.Store().CreateChatMessage(&message); err != nil {
			log.Printf("Error saving chat message: %v", err)
			return middleware.ErrorResponse(c, err, "Failed to post message!")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message posted successfully.", message)
	}
}
