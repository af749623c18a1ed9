package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
)

// Session puerto mínimo del almacén de sesión que necesita el middleware.
type Session interface {
	Active() bool
	Save(token string) error
	Clear()
}

// SessionMiddleware exige una sesión local vigente. La consola porta el
// bearer token hacia el backend; sin token no tiene sentido atender la
// petición, terminaría en 401 del backend de todas formas.
func SessionMiddleware(session Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !session.Active() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "SESSION_EXPIRED", Message: "no hay sesión activa",
			})
		}
		return c.Next()
	}
}
