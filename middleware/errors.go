package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"elevated/gamification"
	"elevated/store"
)

// ErrorResponse maps engine and store errors to an HTTP response in the
// standard envelope. Unknown errors become a 500 with a generic message.
func ErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, store.ErrConflict):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, gamification.ErrInvalidArgument):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, gamification.ErrPreconditionFailed):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	return JsonResponse(c, fiber.StatusInternalServerError, false, fallback, nil)
}
