package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/screens"
)

// DashboardHandler tablero de inicio.
type DashboardHandler struct {
	screen *screens.DashboardScreen
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(screen *screens.DashboardScreen) *DashboardHandler {
	return &DashboardHandler{screen: screen}
}

// Screen godoc
// @Summary      Tablero de inicio
// @Description  Resumen de negocio, distribución de stock y movimientos del día.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/screens/dashboard [get]
func (h *DashboardHandler) Screen(c *fiber.Ctx) error {
	out, err := h.screen.Load(c.Context())
	if err != nil && out == nil {
		return respondError(c, err)
	}
	// Con degradación parcial se responde 200: los widgets sanos conservan dato.
	return c.JSON(out)
}
