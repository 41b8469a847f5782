package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// respond writes the success envelope every endpoint shares.
func respond(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

func respondOK(c *fiber.Ctx, message string, data any) error {
	return respond(c, http.StatusOK, message, data)
}

func respondCreated(c *fiber.Ctx, message string, data any) error {
	return respond(c, http.StatusCreated, message, data)
}
