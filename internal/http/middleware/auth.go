package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"scoutportal/internal/auth"
	"scoutportal/internal/model"
)

// ClaimsLocalKey is the key under which RequireAuth stores the verified
// *auth.Claims in Fiber's context locals.
const ClaimsLocalKey = "auth_claims"

func respondAuthError(c *fiber.Ctx, status int, code, message string) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return c.Status(status).JSON(fiber.Map{
		"request_id": rid,
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// RequireAuth verifies the Bearer token and stores the claims in locals.
// Requests without a valid token are rejected with 401.
func RequireAuth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return respondAuthError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "token has expired"
			}
			return respondAuthError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", msg)
		}

		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// RequireAdmin allows only callers whose verified token carries the admin
// role. It must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, _ := c.Locals(ClaimsLocalKey).(*auth.Claims)
		if claims == nil {
			return respondAuthError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
		}
		if claims.Role != model.RoleAdmin {
			return respondAuthError(c, fiber.StatusForbidden, "FORBIDDEN", "admin role required")
		}
		return c.Next()
	}
}
