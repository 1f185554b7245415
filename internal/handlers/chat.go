package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Seishinnakamoto/Jokko.ia/internal/models"
	"github.com/Seishinnakamoto/Jokko.ia/internal/services"
	"github.com/Seishinnakamoto/Jokko.ia/utils"
)

func Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if req.Language == "" {
		req.Language = services.DefaultLanguage
	}

	// Pure lookup over constant tables; anything unexpected below this point
	// panics and is turned into the generic 500 body by the error boundary.
	return c.JSON(services.Answer(req.Message, req.Language))
}
