package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/state"
)

// applyListState traslada los query params de la petición al estado de la
// pantalla: primero búsqueda y filtros (que reinician la página), después
// limit (también reinicia) y al final la página pedida explícitamente.
func applyListState(c *fiber.Ctx, p *state.Pagination, s *state.Search, filterKeys ...string) {
	if q := c.Query("q"); q != s.Query {
		s.SetQuery(q)
	}
	for _, key := range filterKeys {
		if v := c.Query(key); v != s.Filter(key) {
			s.SetFilter(key, v)
		}
	}
	if limit := c.QueryInt("limit", 0); limit > 0 && limit != p.RecordsPerPage {
		p.SetLimit(limit)
	}
	if page := c.QueryInt("page", 0); page > 0 {
		p.SetPage(page)
	}
}
