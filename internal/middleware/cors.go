package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS configures cross-origin access for the API. Preflight requests
// are answered with 200; fiber's cors middleware defaults to 204.
func CORS() fiber.Handler {
	handler := cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, X-Auth-Token",
		MaxAge:       86400,
	})
	return func(c *fiber.Ctx) error {
		err := handler(c)
		if c.Method() == fiber.MethodOptions && c.Response().StatusCode() == fiber.StatusNoContent {
			c.Status(fiber.StatusOK)
		}
		return err
	}
}
