package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// responseStatus returns the status the client will see. Errors returned up the
// chain are rendered later by the app ErrorHandler, so the response still holds 200.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
