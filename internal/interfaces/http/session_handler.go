package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
)

// CacheCleaner puerto para vaciar el query cache al cerrar sesión.
type CacheCleaner interface {
	Clear()
}

// SessionHandler maneja el ciclo de vida de la sesión local: guardar el token
// emitido por el servicio de autenticación externo y cerrar sesión.
type SessionHandler struct {
	session Session
	cache   CacheCleaner
}

// NewSessionHandler construye el handler.
func NewSessionHandler(session Session, cache CacheCleaner) *SessionHandler {
	return &SessionHandler{session: session, cache: cache}
}

// saveSessionRequest cuerpo de PUT /api/session.
type saveSessionRequest struct {
	Token string `json:"token"`
}

// Save godoc
// @Summary      Guardar token de sesión
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  saveSessionRequest  true  "Bearer token emitido por el servicio de auth"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/session [put]
func (h *SessionHandler) Save(c *fiber.Ctx) error {
	var in saveSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token es requerido"})
	}
	if err := h.session.Save(in.Token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Logout godoc
// @Summary      Cerrar sesión: descarta el token y vacía el query cache
// @Tags         session
// @Success      204
// @Router       /api/session [delete]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.session.Clear()
	h.cache.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
