package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-dashboard-api/internal/application/dto"
	"github.com/jhoicas/pos-dashboard-api/internal/domain"
)

// respondError traduce los errores de dominio a status HTTP + ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidMode):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MODE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrSerialization):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SERIALIZATION_FAILED", Message: domain.ErrSerialization.Error()})
	case errors.Is(err, domain.ErrDataSource):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DATA_SOURCE_UNAVAILABLE", Message: domain.ErrDataSource.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
