package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	authutils "devassist-backend/lib/utils/auth-utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(AuthorizationRequired(secret))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(GetUserID(c))
	})
	return app
}

func TestAuthorizationRequired(t *testing.T) {
	t.Run(`disabled check`, func(t *testing.T) {
		resp, err := newTestApp("").Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`missing token check`, func(t *testing.T) {
		resp, err := newTestApp("secret").Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`valid token check`, func(t *testing.T) {
		token, err := authutils.GetToken("user-1", "Dev", "secret", time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := newTestApp("secret").Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		require.Equal(t, "user-1", string(body))
	})

	t.Run(`wrong secret check`, func(t *testing.T) {
		token, err := authutils.GetToken("user-1", "Dev", "other", time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := newTestApp("secret").Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
