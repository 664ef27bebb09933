package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoutportal/internal/auth"
	"scoutportal/internal/config"
	"scoutportal/internal/model"
)

func newAuthApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTLMin: 15})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(RequestID())

	app.Get("/me", RequireAuth(tokens), func(c *fiber.Ctx) error {
		claims := c.Locals(ClaimsLocalKey).(*auth.Claims)
		return c.SendString(claims.Email)
	})
	app.Get("/admin", RequireAuth(tokens), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, tokens
}

func TestRequireAuth(t *testing.T) {
	app, tokens := newAuthApp(t)

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Basic abc")
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not.a.token")
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token reaches handler", func(t *testing.T) {
		token, err := tokens.Generate("u1", "scout@example.org", model.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRequireAdmin(t *testing.T) {
	app, tokens := newAuthApp(t)

	t.Run("regular user forbidden", func(t *testing.T) {
		token, err := tokens.Generate("u1", "scout@example.org", model.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin allowed", func(t *testing.T) {
		token, err := tokens.Generate("u2", "admin@example.org", model.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
