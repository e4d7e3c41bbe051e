// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"catalogue-service/internal/domain"
	"catalogue-service/internal/transport/httpserver/dto"
)

// respondError maps a service error onto an HTTP response. Client faults
// keep their message; anything else becomes a 500 with a generic message and
// the underlying error attached as diagnostic detail.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_ARGUMENT",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "NOT_FOUND",
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "CONFLICT",
		})
	default:
		logger.Error(fallback,
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   fallback,
			Code:    "UPSTREAM_ERROR",
			Details: err.Error(),
		})
	}
}
