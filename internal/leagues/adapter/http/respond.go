package http

import (
	apperrors "league-backend/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a usecase error onto the transport contract:
// validation failures are 400 with a field-naming message; everything
// else, including not-found, is a 500 operation failure carrying the
// underlying error text.
func respondError(c *fiber.Ctx, err error) error {
	if apperrors.IsValidation(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "operation_failed",
		"message": err.Error(),
	})
}

// respondBadBody is the reply for an undecodable request body.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "invalid_request_body",
		"message": "Failed to parse request body",
	})
}
