package handler

import (
	"studylink/internal/domain"
	"studylink/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// callerID returns the authenticated user id placed in locals by the
// auth middleware.
func callerID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", domain.NewUnauthenticatedError("user context is missing")
	}
	return userID, nil
}

// callerRole returns the caller's role resolved by the auth middleware.
func callerRole(c *fiber.Ctx) (domain.Role, error) {
	role, ok := c.Locals(middleware.UserRoleKey).(domain.Role)
	if !ok {
		return "", domain.NewUnauthenticatedError("user context is missing")
	}
	return role, nil
}

// parseBody decodes the JSON request body into dest.
func parseBody(c *fiber.Ctx, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	return nil
}
