package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
	"github.com/tu-usuario/moda-backoffice/internal/application/forms"
	"github.com/tu-usuario/moda-backoffice/internal/application/screens"
)

// OrdersHandler pantalla y formularios de órdenes de venta.
type OrdersHandler struct {
	screen    *screens.OrdersScreen
	mutations *screens.Mutations
}

// NewOrdersHandler construye el handler.
func NewOrdersHandler(screen *screens.OrdersScreen, mutations *screens.Mutations) *OrdersHandler {
	return &OrdersHandler{screen: screen, mutations: mutations}
}

// List godoc
// @Summary      Pantalla de órdenes de venta
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda libre"
// @Param        status  query  string  false  "PENDING | CONFIRMED | FULFILLED | CANCELLED"
// @Param        page    query  int     false  "Página"
// @Param        limit   query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.OrdersScreenDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/screens/orders [get]
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	h.screen.Lock()
	defer h.screen.Unlock()
	applyListState(c, h.screen.Pagination, h.screen.Search, "status", "customer_id")
	out, err := h.screen.Load(c.Context())
	if err != nil && out == nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden de venta
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  forms.OrderForm  true  "Formulario de orden"
// @Success      201  {object}  entity.Order
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var form forms.OrderForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	form.Recalculate()
	if fields := forms.Validate(form); fields != nil {
		// Validación fallida: alcance campo, sin llamada de red.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "formulario inválido", Fields: fields,
		})
	}
	out, err := h.mutations.CreateOrder(c.Context(), form)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de venta
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de la orden"
// @Param        body  body  forms.OrderForm  true  "Formulario de orden"
// @Success      200  {object}  entity.Order
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var form forms.OrderForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	form.Recalculate()
	if fields := forms.Validate(form); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "formulario inválido", Fields: fields,
		})
	}
	out, err := h.mutations.UpdateOrder(c.Context(), id, form)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
