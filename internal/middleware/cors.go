package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CORS is a Fiber middleware that sets permissive cross-origin headers on
// every response and answers preflight requests directly with an empty JSON
// object, which is what the dashboard clients expect.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Method() == fiber.MethodOptions {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{})
		}
		return c.Next()
	}
}
