package compilerController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"elevated/gamification"
	"elevated/middleware"
	compilerValidator "elevated/validators/compiler"
)

// Challenges returns the full challenge catalog.
func Challenges(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		challenges, err := engine.Store().GetCompilerChallenges()
		if err != nil {
			log.Printf("Error fetching compiler challenges: %v", err)
			return middleware.ErrorResponse(c, err, "Failed to fetch challenges!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Challenges fetched successfully.", challenges)
	}
}

// ChallengeDetail returns a single challenge by ID.
func ChallengeDetail(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		challengeID, err := c.ParamsInt("id")
		if err != nil || challengeID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid challenge ID!", nil)
		}

		challenge, err := engine.Store().GetCompilerChallenge(uint(challengeID))
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to fetch challenge!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Challenge fetched successfully.", challenge)
	}
}

// Submit judges a submitted solution, records the attempt and credits XP
// and badges on a pass.
func Submit(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		reqData := c.Locals("validatedSolution").(*compilerValidator.SubmitSolutionRequest)

		result, err := engine.SubmitSolution(userID, reqData.ChallengeID, reqData.Code)
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to submit solution!")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Solution submitted successfully.", result)
	}
}

// Solutions lists the authenticated user's past attempts.
func Solutions(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)

		solutions, err := engine.Store().GetCompilerSolutions(userID)
		if err != nil {
			log.Printf("Error fetching solutions for user %d: %v", userID, err)
			return middleware.ErrorResponse(c, err, "Failed to fetch solutions!")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Solutions fetched successfully.", solutions)
	}
}
