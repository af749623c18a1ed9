package screens

import (
	"context"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/api"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/cache"
	"github.com/tu-usuario/moda-backoffice/pkg/logger"
)

// MovementsScreen historial de movimientos de bodega, paginado por el
// servidor (a diferencia del resumen, este feed sí tiene paginación remota).
type MovementsScreen struct {
	listScreen
}

// NewMovementsScreen construye la pantalla.
func NewMovementsScreen(backend Backend, qc *cache.QueryCache, log *logger.Logger) *MovementsScreen {
	s := &MovementsScreen{}
	s.init(backend, qc, log.Component("movements_screen"))
	return s
}

// Load obtiene la página actual del historial de movimientos.
func (s *MovementsScreen) Load(ctx context.Context) (*dto.MovementsScreenDTO, error) {
	gen := s.begin()
	key := s.cacheKey(keyMovements)
	res := s.cache.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		page, err := s.backend.ListMovements(ctx, s.listParams())
		if err != nil {
			return nil, err
		}
		return page, nil
	})
	if res.Err != nil && res.Data == nil {
		return nil, res.Err
	}
	if !s.relevant(gen) {
		return nil, ErrStale
	}
	page := res.Data.(api.Page[entity.StockMovement])
	s.applyMeta(page.Meta)

	rows := make([]dto.MovementRowDTO, 0, len(page.Items))
	for _, m := range page.Items {
		row := dto.MovementRowDTO{
			ID:         m.ID,
			Type:       m.Type,
			Quantity:   m.Quantity,
			ReasonType: m.ReasonType,
			Reason:     m.Reason,
			OrderID:    m.OrderID,
			CreatedBy:  m.CreatedBy,
			CreatedAt:  m.CreatedAt,
		}
		if v := m.Variant; v != nil {
			row.SKU = v.SKU
			row.VariantName = v.Name
		}
		rows = append(rows, row)
	}
	return &dto.MovementsScreenDTO{Rows: rows, Page: s.pageDTO()}, res.Err
}
