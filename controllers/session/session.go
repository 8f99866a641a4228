package sessionController

import (
	"log"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"elevated/gamification"
	"elevated/middleware"
	"elevated/models"
	"elevated/utils"
)

// List returns all live sessions.
func List(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessions, err := engine.Store().GetLiveSessions()
		if err != nil {
			log.Printf("Error fetching live sessions: %v", err)
			return middleware.ErrorResponse(c, err, "Failed to fetch live sessions!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Live sessions fetched successfully.", sessions)
	}
}

// Detail returns one session with its joining details resolved.
func Detail(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID, err := c.ParamsInt("id")
		if err != nil || sessionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
		}

		session, err := engine.Store().GetLiveSession(uint(sessionID))
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to fetch live session!")
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Live session fetched successfully.", fiber.Map{
			"session": session,
			"meeting": utils.GetMeetingDetails(session),
		})
	}
}

// Upcoming returns sessions that have not started yet, soonest first.
func Upcoming(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessions, err := engine.Store().GetLiveSessions()
		if err != nil {
			log.Printf("Error fetching live sessions: %v", err)
			return middleware.ErrorResponse(c, err, "Failed to fetch live sessions!")
		}

		now := time.Now()
		upcoming := make([]models.LiveSession, 0)
		for _, session := range sessions {
			if session.SessionDate.After(now) {
				upcoming = append(upcoming, session)
			}
		}
		sort.Slice(upcoming, func(i, j int) bool {
			return upcoming[i].SessionDate.Before(upcoming[j].SessionDate)
		})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Upcoming sessions fetched successfully.", upcoming)
	}
}
