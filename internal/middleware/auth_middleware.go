package middleware

import (
	"studylink/internal/domain"
	"studylink/internal/logger"
	"studylink/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// AuthTokenHeader carries the JWT. Header lookup is case-insensitive.
	AuthTokenHeader = "X-Auth-Token"

	UserIDKey   = "userID"   // Key for storing UserID in fiber.Ctx locals
	UserRoleKey = "userRole" // Key for storing the caller's role in fiber.Ctx locals
)

// Protected requires a valid token and, when roles are given, one of
// those roles. The role is loaded from the store on every request; it is
// never trusted from the token. Errors flow to the central ErrorHandler.
func Protected(authService service.AuthService, roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(AuthTokenHeader)
		if tokenString == "" {
			return domain.NewUnauthenticatedError("authentication token is missing")
		}

		claims, err := authService.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			return domain.NewInvalidTokenError(err)
		}

		role, err := authService.GetUserRole(c.Context(), claims.UserID)
		if err != nil {
			// A valid token whose subject no longer exists.
			return err
		}

		if len(roles) > 0 && !roleAllowed(role, roles) {
			logger.Get().Warn("role not permitted for route",
				zap.String("userID", claims.UserID),
				zap.String("role", string(role)),
				zap.String("path", c.Path()))
			return domain.NewForbiddenError("access denied")
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(UserRoleKey, role)

		return c.Next()
	}
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
