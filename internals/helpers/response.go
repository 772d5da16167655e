package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Successful bodies are the bare resource, which is what the dashboard client
// consumes; errors always use ErrorBody.

// JsonOK: 200 with the resource as body (GET detail/list, PUT, PATCH)
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: 201 (POST)
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonDeleted: 204 without body (DELETE)
func JsonDeleted(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(ErrorBody{Error: message})
}

// JsonValidationError: 400 with field -> messages
func JsonValidationError(c *fiber.Ctx, message string, fieldErrors map[string][]string) error {
	if message == "" {
		message = MsgInvalidData
	}
	body := ErrorBody{Error: message}
	if len(fieldErrors) > 0 {
		body.Details = fieldErrors
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}
