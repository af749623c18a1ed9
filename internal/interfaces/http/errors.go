package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
	"github.com/tu-usuario/moda-backoffice/internal/application/screens"
	"github.com/tu-usuario/moda-backoffice/internal/domain"
)

// respondError mapea un error de dominio a la respuesta HTTP de la consola.
// Nada aquí es fatal: el peor caso es una pantalla con indicador de error.
func respondError(c *fiber.Ctx, err error) error {
	var insufficientStock *domain.InsufficientStockError
	switch {
	case errors.As(err, &insufficientStock):
		// Error de regla de negocio: mensaje específico con los campos
		// estructurados, más informativo que el genérico.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: insufficientStock.Error(),
			Fields: map[string]string{
				"variant_id":    insufficientStock.VariantID,
				"current_stock": insufficientStock.CurrentStock.String(),
				"requested":     insufficientStock.Requested.String(),
			},
		})
	case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "SESSION_EXPIRED", Message: "sesión expirada, inicie sesión de nuevo",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "recurso duplicado",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, screens.ErrStale):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "STALE_QUERY", Message: "la consulta fue reemplazada por una más nueva",
		})
	default:
		// Transporte o backend: toast genérico; el dato cacheado sigue visible.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM", Message: "el backend no respondió correctamente",
		})
	}
}
