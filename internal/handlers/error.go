package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-wide error boundary. Handler errors and recovered
// panics both end up here; anything without an explicit status code becomes a
// generic internal error carrying the original failure text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	message := err.Error()
	if code == fiber.StatusInternalServerError {
		message = "Errore: " + message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
