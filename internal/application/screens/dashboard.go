package screens

import (
	"context"
	"time"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
	"github.com/tu-usuario/moda-backoffice/internal/application/state"
	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/domain/stock"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/api"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/cache"
	"github.com/tu-usuario/moda-backoffice/pkg/logger"
)

// DashboardScreen tablero de inicio: resumen de negocio, stock y movimientos
// del día.
type DashboardScreen struct {
	backend Backend
	cache   *cache.QueryCache
	log     *logger.Logger
}

// NewDashboardScreen construye la pantalla.
func NewDashboardScreen(backend Backend, qc *cache.QueryCache, log *logger.Logger) *DashboardScreen {
	return &DashboardScreen{backend: backend, cache: qc, log: log.Component("dashboard_screen")}
}

// Load dispara los tres feeds del tablero en paralelo y combina resultados.
// Cada widget degrada de forma independiente: si un feed falla, los demás
// widgets conservan sus datos y el error se reporta una sola vez.
func (s *DashboardScreen) Load(ctx context.Context) (*dto.DashboardDTO, error) {
	type summaryResult struct {
		data *api.DashboardSummary
		err  error
	}
	type stockResult struct {
		data []entity.StockSummary
		err  error
	}
	type movementsResult struct {
		data []entity.StockMovement
		err  error
	}

	summaryCh := make(chan summaryResult, 1)
	stockCh := make(chan stockResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		res := s.cache.Fetch(ctx, keyDashboard, func(ctx context.Context) (any, error) {
			sum, err := s.backend.GetDashboardSummary(ctx)
			if err != nil {
				return nil, err
			}
			return sum, nil
		})
		if res.Data == nil {
			summaryCh <- summaryResult{err: res.Err}
			return
		}
		summaryCh <- summaryResult{data: res.Data.(*api.DashboardSummary), err: res.Err}
	}()
	go func() {
		res := s.cache.Fetch(ctx, keyDashboardStock, func(ctx context.Context) (any, error) {
			summaries, err := s.backend.GetDashboardStockSummary(ctx)
			if err != nil {
				return nil, err
			}
			return summaries, nil
		})
		if res.Data == nil {
			stockCh <- stockResult{err: res.Err}
			return
		}
		stockCh <- stockResult{data: res.Data.([]entity.StockSummary), err: res.Err}
	}()
	go func() {
		res := s.cache.Fetch(ctx, keyMovements+":today", func(ctx context.Context) (any, error) {
			page, err := s.backend.ListMovements(ctx, api.ListParams{
				Page:    1,
				Limit:   state.MaxLimit,
				Filters: map[string]string{"date": "today"},
			})
			if err != nil {
				return nil, err
			}
			return page.Items, nil
		})
		if res.Data == nil {
			movementsCh <- movementsResult{err: res.Err}
			return
		}
		movementsCh <- movementsResult{data: res.Data.([]entity.StockMovement), err: res.Err}
	}()

	summary := <-summaryCh
	stockFeed := <-stockCh
	movements := <-movementsCh

	out := &dto.DashboardDTO{}
	if summary.data != nil {
		out.TotalOrders = summary.data.TotalOrders
		out.PendingOrders = summary.data.PendingOrders
		out.TotalCustomers = summary.data.TotalCustomers
		out.TodayRevenue = summary.data.TodayRevenue
	}
	if stockFeed.data != nil {
		st := stock.ComputeStats(stockFeed.data)
		out.Stock = dto.InventoryStatsDTO{
			TotalProducts: st.TotalProducts,
			InStock:       st.InStock,
			LowStock:      st.LowStock,
			OutOfStock:    st.OutOfStock,
		}
	}
	if movements.data != nil {
		out.TodayMovements = SumTodayMovements(movements.data, time.Now())
	}

	// Primer error no-nulo; los widgets con dato previo ya quedaron pintados.
	for _, err := range []error{summary.err, stockFeed.err, movements.err} {
		if err != nil {
			return out, err
		}
	}
	return out, nil
}
