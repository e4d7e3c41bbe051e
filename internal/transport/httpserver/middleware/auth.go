// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"catalogue-service/internal/transport/httpserver/dto"
)

// Auth returns a middleware that checks the Authorization header against the
// configured API key. The comparison is constant time so the key cannot be
// probed byte by byte.
func Auth(apiKey string) fiber.Handler {
	secret := []byte(apiKey)

	return func(c *fiber.Ctx) error {
		provided := c.Get(fiber.HeaderAuthorization)
		if provided == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "missing authorization header",
				Code:  "UNAUTHORIZED",
			})
		}

		if subtle.ConstantTimeCompare([]byte(provided), secret) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "invalid api key",
				Code:  "FORBIDDEN",
			})
		}

		return c.Next()
	}
}
