package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
	"github.com/tu-usuario/moda-backoffice/internal/application/forms"
	"github.com/tu-usuario/moda-backoffice/internal/application/screens"
)

// CustomersHandler pantalla y formularios de clientes.
type CustomersHandler struct {
	screen    *screens.CustomersScreen
	mutations *screens.Mutations
}

// NewCustomersHandler construye el handler.
func NewCustomersHandler(screen *screens.CustomersScreen, mutations *screens.Mutations) *CustomersHandler {
	return &CustomersHandler{screen: screen, mutations: mutations}
}

// List godoc
// @Summary      Pantalla de clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  false  "Búsqueda libre"
// @Param        city   query  string  false  "Filtro por ciudad"
// @Param        page   query  int     false  "Página"
// @Param        limit  query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.CustomersScreenDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/screens/customers [get]
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	h.screen.Lock()
	defer h.screen.Unlock()
	applyListState(c, h.screen.Pagination, h.screen.Search, "city")
	out, err := h.screen.Load(c.Context())
	if err != nil && out == nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  forms.CustomerForm  true  "Formulario de cliente"
// @Success      201  {object}  entity.Customer
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var form forms.CustomerForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := forms.Validate(form); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "formulario inválido", Fields: fields,
		})
	}
	out, err := h.mutations.CreateCustomer(c.Context(), form)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del cliente"
// @Param        body  body  forms.CustomerForm  true  "Formulario de cliente"
// @Success      200  {object}  entity.Customer
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var form forms.CustomerForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := forms.Validate(form); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "formulario inválido", Fields: fields,
		})
	}
	out, err := h.mutations.UpdateCustomer(c.Context(), id, form)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
