package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Seishinnakamoto/Jokko.ia/internal/services"
)

// Root returns the static welcome payload used by clients to populate their UI.
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "JOKKO AI - La tua voce, la tua strada",
		"services":  services.ServiceKeys(),
		"languages": services.SupportedLanguages,
	})
}

// Health reports liveness and the supported-language map.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"message":   "JOKKO AI funzionante",
		"languages": services.SupportedLanguages,
	})
}
