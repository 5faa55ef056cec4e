package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// The public API speaks the bare wire format the frontend was built
// against: payloads as-is on success, {"error": msg} on failure. The
// underlying cause is logged server-side and never leaked.

func SuccessResponse(c *fiber.Ctx, data any, status int) error {
	return c.Status(status).JSON(data)
}

func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
