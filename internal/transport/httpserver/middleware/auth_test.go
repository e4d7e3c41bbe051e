package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "super-secret-key"

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(Auth(testAPIKey))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestAuth_MissingHeader(t *testing.T) {
	app := newAuthApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_WrongKey(t *testing.T) {
	app := newAuthApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "not-the-key")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuth_KeyPrefixRejected(t *testing.T) {
	app := newAuthApp()

	// A prefix of the key must not pass the comparison.
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", testAPIKey[:len(testAPIKey)-1])
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuth_ValidKey(t *testing.T) {
	app := newAuthApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", testAPIKey)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
