package screens

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
	"github.com/tu-usuario/moda-backoffice/internal/application/state"
	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/domain/stock"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/api"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/cache"
	"github.com/tu-usuario/moda-backoffice/pkg/logger"
)

// FilterStockLevel clave del filtro de nivel de stock en la pantalla de inventario.
const FilterStockLevel = "stock_level"

// InventoryScreen pantalla "Inventario de Stock". No existe un endpoint
// combinado en el servidor: la pantalla junta el feed de resumen (completo,
// sin paginar) con el feed de movimientos (paginado) y hace búsqueda, filtro
// y paginación del resumen del lado del cliente, en memoria.
//
// Límite de escala heredado del diseño: asume que el feed de resumen cabe en
// memoria (catálogos de miles de variantes, no millones).
type InventoryScreen struct {
	listScreen
}

// NewInventoryScreen construye la pantalla.
func NewInventoryScreen(backend Backend, qc *cache.QueryCache, log *logger.Logger) *InventoryScreen {
	s := &InventoryScreen{}
	s.init(backend, qc, log.Component("inventory_screen"))
	return s
}

// Load produce las filas y estadísticas de la pantalla:
//
//  1. pide el feed completo de resumen (clave de caché única, sin parámetros);
//  2. filtra en memoria: texto libre contra sku+nombre+producto+talla+color y
//     nivel de stock contra la clasificación canónica;
//  3. recalcula los totales de paginación sobre el largo FILTRADO y recorta
//     la ventana [offset, offset+limit);
//  4. calcula las estadísticas sobre el feed SIN filtrar.
//
// Si el fetch del resumen falla sin dato previo devuelve DTO nil con el
// error: nunca números calculados de la nada. Con dato previo en caché
// (incluso un feed legítimamente vacío) devuelve el último resultado bueno
// junto con el error del refetch.
func (s *InventoryScreen) Load(ctx context.Context) (*dto.InventoryScreenDTO, error) {
	gen := s.begin()
	res := s.cache.Fetch(ctx, keySummary, func(ctx context.Context) (any, error) {
		summaries, err := s.backend.GetStockSummary(ctx)
		if err != nil {
			return nil, err
		}
		return summaries, nil
	})
	if res.Err != nil && res.Data == nil {
		s.log.Warn().Err(res.Err).Msg("feed de resumen no disponible")
		return nil, res.Err
	}
	if !s.relevant(gen) {
		return nil, ErrStale
	}
	summaries := res.Data.([]entity.StockSummary)

	filtered := s.filterSummaries(summaries)

	from, to := s.Pagination.Window(len(filtered))
	pageRows := filtered[from:to]

	rows := make([]dto.InventoryRowDTO, 0, len(pageRows))
	for _, sum := range pageRows {
		rows = append(rows, toInventoryRow(sum))
	}
	stats := stock.ComputeStats(summaries)
	return &dto.InventoryScreenDTO{
		Rows: rows,
		Stats: dto.InventoryStatsDTO{
			TotalProducts: stats.TotalProducts,
			InStock:       stats.InStock,
			LowStock:      stats.LowStock,
			OutOfStock:    stats.OutOfStock,
		},
		Page: s.pageDTO(),
	}, res.Err
}

// filterSummaries aplica el predicado de texto y el filtro de nivel.
func (s *InventoryScreen) filterSummaries(summaries []entity.StockSummary) []entity.StockSummary {
	query := s.Search.Query
	levelFilter := s.Search.Filter(FilterStockLevel)

	filtered := make([]entity.StockSummary, 0, len(summaries))
	for _, sum := range summaries {
		if levelFilter != "" && string(stock.Classify(sum.CurrentStock)) != levelFilter {
			continue
		}
		if !matchesSummary(query, sum) {
			continue
		}
		filtered = append(filtered, sum)
	}
	return filtered
}

// matchesSummary predicado de texto libre sobre los campos visibles de la fila.
func matchesSummary(query string, sum entity.StockSummary) bool {
	if query == "" {
		return true
	}
	var sku, name, product, size, color string
	if v := sum.Variant; v != nil {
		sku, name, product, size, color = v.SKU, v.Name, v.ProductName, v.Size, v.Color
	}
	return state.MatchesQuery(query, sku, name, product, size, color)
}

func toInventoryRow(sum entity.StockSummary) dto.InventoryRowDTO {
	row := dto.InventoryRowDTO{
		VariantID:     sum.VariantID,
		CurrentStock:  sum.CurrentStock,
		TotalStockIn:  sum.TotalStockIn,
		TotalStockOut: sum.TotalStockOut,
		StockLevel:    string(stock.Classify(sum.CurrentStock)),
	}
	if v := sum.Variant; v != nil {
		row.SKU = v.SKU
		row.VariantName = v.Name
		row.ProductName = v.ProductName
		row.Size = v.Size
		row.Color = v.Color
	}
	return row
}

// TodayMovements totales IN/OUT del día calendario local. Usa el feed de
// movimientos; si este falla, solo degradan los widgets de movimientos
// (la tabla de inventario no depende de aquí).
func (s *InventoryScreen) TodayMovements(ctx context.Context) (*dto.TodayMovementsDTO, error) {
	res := s.cache.Fetch(ctx, keyMovements+":today", func(ctx context.Context) (any, error) {
		// El backend pagina movimientos; para los totales del día basta la
		// primera página grande ordenada por fecha descendente.
		page, err := s.backend.ListMovements(ctx, api.ListParams{
			Page:  1,
			Limit: state.MaxLimit,
			Filters: map[string]string{
				"date": "today",
			},
		})
		if err != nil {
			return nil, err
		}
		return page.Items, nil
	})
	if res.Err != nil && res.Data == nil {
		return nil, res.Err
	}
	movements := res.Data.([]entity.StockMovement)
	totals := SumTodayMovements(movements, time.Now())
	return &totals, res.Err
}

// SumTodayMovements filtra los movimientos cuyo created_at cae en el día
// calendario local de now, los parte por tipo y suma cantidades.
func SumTodayMovements(movements []entity.StockMovement, now time.Time) dto.TodayMovementsDTO {
	// Hoy: 00:00:00 – 23:59:59 en la zona local
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	totals := dto.TodayMovementsDTO{StockIn: decimal.Zero, StockOut: decimal.Zero}
	for _, m := range movements {
		created := m.CreatedAt.In(now.Location())
		if created.Before(dayStart) || !created.Before(dayEnd) {
			continue
		}
		switch m.Type {
		case entity.MovementTypeIN:
			totals.StockIn = totals.StockIn.Add(m.Quantity)
		case entity.MovementTypeOUT:
			totals.StockOut = totals.StockOut.Add(m.Quantity)
		}
	}
	return totals
}
