package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
	"github.com/tu-usuario/moda-backoffice/internal/application/forms"
	"github.com/tu-usuario/moda-backoffice/internal/application/screens"
)

// StockHandler registro de entradas y salidas de stock.
type StockHandler struct {
	mutations *screens.Mutations
}

// NewStockHandler construye el handler.
func NewStockHandler(mutations *screens.Mutations) *StockHandler {
	return &StockHandler{mutations: mutations}
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  forms.StockInForm  true  "Formulario de entrada"
// @Success      201  {object}  entity.StockMovement
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/warehouse/stock-in [post]
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	var form forms.StockInForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := forms.Validate(form); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "formulario inválido", Fields: fields,
		})
	}
	out, err := h.mutations.StockIn(c.Context(), form)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  forms.StockOutForm  true  "Formulario de salida"
// @Success      201  {object}  entity.StockMovement
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/warehouse/stock-out [post]
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	var form forms.StockOutForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := forms.Validate(form); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "formulario inválido", Fields: fields,
		})
	}
	out, err := h.mutations.StockOut(c.Context(), form)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
