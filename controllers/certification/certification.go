package certificationController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"elevated/gamification"
	"elevated/middleware"
	"elevated/utils"
	certificationValidator "elevated/validators/certification"
)

// Create issues a certificate for a completed enrollment and emails the
// learner a link to it.
func Create(engine *gamification.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		reqData := c.Locals("validatedCertification").(*certificationValidator.CreateCertificationRequest)

		certification, err := engine.IssueCertification(userID, reqData.CourseID, reqData.Title)
		if err != nil {
			return middleware.ErrorResponse(c, err, "Failed to issue certification!")
		}

		if user, err := engine.Store().GetUser(userID); err == nil {
			utils.SendCertificateEmail(user.Email, user.Username, certification.Title, certification.CertificateURL)
		} else {
			log.Printf("Error fetching user %d for certificate email: %v", userID, err)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certification issued successfully.", certification)
	}
}
