package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"elevated/config"
	"elevated/gamification"
	"elevated/middleware"
	"elevated/models"
	"elevated/store"
	authValidator "elevated/validators/auth"
)

// Signup registers a new user. The username is unique case-insensitively.
func Signup(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedSignup").(*authValidator.SignupRequest)
		st := engine.Store()

		if _, err := st.GetUserByUsername(reqData.Username); err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		newUser := models.User{
			Username:  reqData.Username,
			Password:  string(hashedPassword),
			Email:     reqData.Email,
			AvatarURL: reqData.AvatarURL,
		}
		if err := st.CreateUser(&newUser); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
			}
			log.Printf("Error saving user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
	}
}

// Login verifies credentials and returns a signed JWT with the user record.
func Login(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)
		st := engine.Store()

		user, err := st.GetUserByUsername(reqData.Username)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
		}

		token, err := middleware.GenerateJWT(user.ID, user.Username)
		if err != nil {
			log.Printf("Error generating JWT for user %d: %v", user.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
			"token": token,
			"user":  user,
		})
	}
}
