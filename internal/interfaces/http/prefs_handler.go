package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/prefs"
)

// PrefsHandler preferencias de UI por tabla (anchos de columna).
type PrefsHandler struct {
	store *prefs.Store
}

// NewPrefsHandler construye el handler.
func NewPrefsHandler(store *prefs.Store) *PrefsHandler {
	return &PrefsHandler{store: store}
}

// columnWidthsDTO anchos de columna de una tabla, en píxeles.
type columnWidthsDTO struct {
	Widths map[string]int `json:"widths"`
}

// Get godoc
// @Summary      Anchos de columna guardados de una tabla
// @Tags         prefs
// @Security     Bearer
// @Produce      json
// @Param        table  path  string  true  "Identificador de tabla"
// @Success      200  {object}  columnWidthsDTO
// @Router       /api/prefs/tables/{table}/columns [get]
func (h *PrefsHandler) Get(c *fiber.Ctx) error {
	tableID := c.Params("table")
	if tableID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "table es requerido"})
	}
	return c.JSON(columnWidthsDTO{Widths: h.store.ColumnWidths(tableID)})
}

// Put godoc
// @Summary      Guardar anchos de columna de una tabla
// @Tags         prefs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        table  path  string           true  "Identificador de tabla"
// @Param        body   body  columnWidthsDTO  true  "Anchos por columna"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/prefs/tables/{table}/columns [put]
func (h *PrefsHandler) Put(c *fiber.Ctx) error {
	tableID := c.Params("table")
	if tableID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "table es requerido"})
	}
	var body columnWidthsDTO
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// La escritura a disco es write-behind: la ráfaga del arrastre de columna
	// coalesce en un solo flush.
	h.store.SetColumnWidths(tableID, body.Widths)
	return c.SendStatus(fiber.StatusNoContent)
}
