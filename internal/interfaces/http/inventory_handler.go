package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/screens"
)

// InventoryHandler pantallas de bodega: inventario de stock, totales del día
// e historial de movimientos.
type InventoryHandler struct {
	inventory *screens.InventoryScreen
	movements *screens.MovementsScreen
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(inventory *screens.InventoryScreen, movements *screens.MovementsScreen) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, movements: movements}
}

// Screen godoc
// @Summary      Pantalla de inventario de stock
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        q            query  string  false  "Búsqueda libre (sku, nombre, producto, talla, color)"
// @Param        stock_level  query  string  false  "OUT_OF_STOCK | LOW | MEDIUM | HIGH"
// @Param        page         query  int     false  "Página"  default(1)
// @Param        limit        query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.InventoryScreenDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/screens/inventory [get]
func (h *InventoryHandler) Screen(c *fiber.Ctx) error {
	h.inventory.Lock()
	defer h.inventory.Unlock()
	applyListState(c, h.inventory.Pagination, h.inventory.Search, screens.FilterStockLevel)
	out, err := h.inventory.Load(c.Context())
	if err != nil && out == nil {
		// Feed caído sin dato previo: error visible, nunca estadísticas
		// calculadas de la nada.
		return respondError(c, err)
	}
	// Con dato previo (stale-while-revalidate) se sigue mostrando el último
	// resultado bueno aunque el refetch haya fallado.
	return c.JSON(out)
}

// Today godoc
// @Summary      Totales de movimientos del día (entradas y salidas)
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TodayMovementsDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/screens/inventory/today [get]
func (h *InventoryHandler) Today(c *fiber.Ctx) error {
	out, err := h.inventory.TodayMovements(c.Context())
	if err != nil && out == nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos de bodega (paginado por el servidor)
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  false  "Búsqueda libre"
// @Param        type   query  string  false  "IN | OUT"
// @Param        page   query  int     false  "Página"
// @Param        limit  query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.MovementsScreenDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/screens/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	h.movements.Lock()
	defer h.movements.Unlock()
	applyListState(c, h.movements.Pagination, h.movements.Search, "type", "variant_id")
	out, err := h.movements.Load(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
