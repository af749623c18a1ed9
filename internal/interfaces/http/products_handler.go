package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
	"github.com/tu-usuario/moda-backoffice/internal/application/forms"
	"github.com/tu-usuario/moda-backoffice/internal/application/screens"
	"github.com/tu-usuario/moda-backoffice/internal/application/table"
)

// ProductsHandler pantalla del catálogo (tabla árbol) y formularios de producto.
type ProductsHandler struct {
	screen    *screens.ProductsScreen
	mutations *screens.Mutations
}

// NewProductsHandler construye el handler.
func NewProductsHandler(screen *screens.ProductsScreen, mutations *screens.Mutations) *ProductsHandler {
	return &ProductsHandler{screen: screen, mutations: mutations}
}

// productsScreenDTO respuesta de la pantalla de catálogo.
type productsScreenDTO struct {
	Rows []table.Row `json:"rows"`
	Page dto.PageDTO `json:"page"`
}

// List godoc
// @Summary      Pantalla del catálogo de productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda libre"
// @Param        gender  query  string  false  "MEN | WOMEN | UNISEX | KIDS"
// @Param        page    query  int     false  "Página"
// @Param        limit   query  int     false  "Tamaño de página"
// @Success      200  {object}  productsScreenDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/screens/products [get]
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	h.screen.Lock()
	defer h.screen.Unlock()
	applyListState(c, h.screen.Pagination, h.screen.Search, "gender", "category")
	rows, page, err := h.screen.Load(c.Context())
	if err != nil && rows == nil {
		return respondError(c, err)
	}
	return c.JSON(productsScreenDTO{Rows: rows, Page: page})
}

// Toggle godoc
// @Summary      Alternar expansión de un producto en la tabla árbol
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  productsScreenDTO
// @Router       /api/screens/products/{id}/toggle [post]
func (h *ProductsHandler) Toggle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	h.screen.Lock()
	defer h.screen.Unlock()
	h.screen.Expansion.Toggle(id)
	rows, page, err := h.screen.Load(c.Context())
	if err != nil && rows == nil {
		return respondError(c, err)
	}
	return c.JSON(productsScreenDTO{Rows: rows, Page: page})
}

// ExpandAll godoc
// @Summary      Expandir todos los productos de la página cargada
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  productsScreenDTO
// @Router       /api/screens/products/expand-all [post]
func (h *ProductsHandler) ExpandAll(c *fiber.Ctx) error {
	h.screen.Lock()
	defer h.screen.Unlock()
	// Primero carga la página vigente: expandir todo aplica solo a lo cargado.
	rows, _, err := h.screen.Load(c.Context())
	if err != nil && rows == nil {
		return respondError(c, err)
	}
	h.screen.Expansion.ExpandAll(h.screen.LoadedProductIDs(rows))
	rows, page, err := h.screen.Load(c.Context())
	if err != nil && rows == nil {
		return respondError(c, err)
	}
	return c.JSON(productsScreenDTO{Rows: rows, Page: page})
}

// CollapseAll godoc
// @Summary      Colapsar todos los productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  productsScreenDTO
// @Router       /api/screens/products/collapse-all [post]
func (h *ProductsHandler) CollapseAll(c *fiber.Ctx) error {
	h.screen.Lock()
	defer h.screen.Unlock()
	h.screen.Expansion.CollapseAll()
	rows, page, err := h.screen.Load(c.Context())
	if err != nil && rows == nil {
		return respondError(c, err)
	}
	return c.JSON(productsScreenDTO{Rows: rows, Page: page})
}

// Create godoc
// @Summary      Crear producto con variantes
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  forms.ProductForm  true  "Formulario de producto"
// @Success      201  {object}  entity.Product
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var form forms.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := forms.Validate(form); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "formulario inválido", Fields: fields,
		})
	}
	out, err := h.mutations.CreateProduct(c.Context(), form)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del producto"
// @Param        body  body  forms.ProductForm  true  "Formulario de producto"
// @Success      200  {object}  entity.Product
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var form forms.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := forms.Validate(form); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "formulario inválido", Fields: fields,
		})
	}
	out, err := h.mutations.UpdateProduct(c.Context(), id, form)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
