package screens

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/tu-usuario/moda-backoffice/internal/application/dto"
	"github.com/tu-usuario/moda-backoffice/internal/application/state"
	"github.com/tu-usuario/moda-backoffice/internal/application/table"
	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/api"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/cache"
	"github.com/tu-usuario/moda-backoffice/pkg/logger"
)

// listScreen estado compartido de una pantalla de listado paginado en el
// servidor: paginación + búsqueda + guard de relevancia.
type listScreen struct {
	Pagination *state.Pagination
	Search     *state.Search

	mu      sync.Mutex
	backend Backend
	cache   *cache.QueryCache
	log     *logger.Logger
	gen     atomic.Uint64
}

// init inicializa el estado en sitio (el candado y la generación no se copian).
func (s *listScreen) init(backend Backend, qc *cache.QueryCache, log *logger.Logger) {
	p := state.NewPagination()
	s.Pagination = p
	s.Search = state.NewSearch(p)
	s.backend = backend
	s.cache = qc
	s.log = log
}

// Lock toma el candado de estado de la pantalla. Fiber atiende cada petición
// en su propia goroutine y el estado (paginación, filtros, expansión) es uno
// por proceso: el handler sostiene el candado desde que traslada los query
// params hasta que termina Load para que dos peticiones simultáneas no se
// pisen los mapas de filtros ni la paginación.
func (s *listScreen) Lock() { s.mu.Lock() }

// Unlock libera el candado de estado.
func (s *listScreen) Unlock() { s.mu.Unlock() }

// begin registra una consulta nueva y devuelve su generación.
func (s *listScreen) begin() uint64 {
	return s.gen.Add(1)
}

// relevant indica si la generación sigue siendo la vigente.
func (s *listScreen) relevant(gen uint64) bool {
	return s.gen.Load() == gen
}

// listParams parámetros del backend para la página y filtros actuales.
func (s *listScreen) listParams() api.ListParams {
	return api.ListParams{
		Query:   s.Search.Query,
		Page:    s.Pagination.CurrentPage,
		Limit:   s.Pagination.RecordsPerPage,
		Filters: s.Search.Filters,
	}
}

// applyMeta incorpora los totales reportados por el servidor.
func (s *listScreen) applyMeta(meta *api.PageMeta) {
	if meta == nil {
		return
	}
	s.Pagination.Update(state.PaginationUpdate{
		TotalPages:   &meta.TotalPages,
		TotalRecords: &meta.TotalRecords,
	})
}

// pageDTO snapshot de la paginación para la respuesta.
func (s *listScreen) pageDTO() dto.PageDTO {
	return dto.PageDTO{
		CurrentPage:    s.Pagination.CurrentPage,
		RecordsPerPage: s.Pagination.RecordsPerPage,
		TotalPages:     s.Pagination.TotalPages,
		TotalRecords:   s.Pagination.TotalRecords,
	}
}

// cacheKey clave de caché para el recurso con página y filtros actuales.
func (s *listScreen) cacheKey(resource string) string {
	suffix := s.Search.CacheKeySuffix()
	suffix += "page=" + strconv.Itoa(s.Pagination.CurrentPage) + "&limit=" + strconv.Itoa(s.Pagination.RecordsPerPage)
	return cache.Key(resource, suffix)
}

// OrdersScreen pantalla de gestión de órdenes de venta.
type OrdersScreen struct {
	listScreen
}

// NewOrdersScreen construye la pantalla.
func NewOrdersScreen(backend Backend, qc *cache.QueryCache, log *logger.Logger) *OrdersScreen {
	s := &OrdersScreen{}
	s.init(backend, qc, log.Component("orders_screen"))
	return s
}

// Load obtiene la página actual de órdenes (caché mediante) y la mapea a filas.
func (s *OrdersScreen) Load(ctx context.Context) (*dto.OrdersScreenDTO, error) {
	gen := s.begin()
	key := s.cacheKey(ResourceOrders)
	res := s.cache.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		page, err := s.backend.ListOrders(ctx, s.listParams())
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
	page := res.Data.(api.Page[entity.Order])
	s.applyMeta(page.Meta)

	rows := make([]dto.OrderRowDTO, 0, len(page.Items))
	for _, o := range page.Items {
		rows = append(rows, dto.OrderRowDTO{
			ID:           o.ID,
			Code:         o.Code,
			CustomerName: o.CustomerName,
			Status:       o.Status,
			ItemCount:    len(o.Items),
			TotalAmount:  o.TotalAmount,
			CreatedAt:    o.CreatedAt,
		})
	}
	return &dto.OrdersScreenDTO{Rows: rows, Page: s.pageDTO()}, res.Err
}

// CustomersScreen pantalla de gestión de clientes.
type CustomersScreen struct {
	listScreen
}

// NewCustomersScreen construye la pantalla.
func NewCustomersScreen(backend Backend, qc *cache.QueryCache, log *logger.Logger) *CustomersScreen {
	s := &CustomersScreen{}
	s.init(backend, qc, log.Component("customers_screen"))
	return s
}

// Load obtiene la página actual de clientes.
func (s *CustomersScreen) Load(ctx context.Context) (*dto.CustomersScreenDTO, error) {
	gen := s.begin()
	key := s.cacheKey(ResourceCustomers)
	res := s.cache.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		page, err := s.backend.ListCustomers(ctx, s.listParams())
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
	page := res.Data.(api.Page[entity.Customer])
	s.applyMeta(page.Meta)

	rows := make([]dto.CustomerRowDTO, 0, len(page.Items))
	for _, c := range page.Items {
		rows = append(rows, dto.CustomerRowDTO{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			City:      c.City,
			CreatedAt: c.CreatedAt,
		})
	}
	return &dto.CustomersScreenDTO{Rows: rows, Page: s.pageDTO()}, res.Err
}

// ProductsScreen pantalla del catálogo de productos con tabla árbol
// producto → variante.
type ProductsScreen struct {
	listScreen
	Expansion *table.Expansion
}

// NewProductsScreen construye la pantalla.
func NewProductsScreen(backend Backend, qc *cache.QueryCache, log *logger.Logger) *ProductsScreen {
	s := &ProductsScreen{Expansion: table.NewExpansion()}
	s.init(backend, qc, log.Component("products_screen"))
	return s
}

// Load obtiene la página de productos y la aplana según el estado de expansión.
func (s *ProductsScreen) Load(ctx context.Context) ([]table.Row, dto.PageDTO, error) {
	gen := s.begin()
	key := s.cacheKey(ResourceProducts)
	res := s.cache.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		page, err := s.backend.ListProducts(ctx, s.listParams())
		if err != nil {
			return nil, err
		}
		return page, nil
	})
	if res.Err != nil && res.Data == nil {
		return nil, dto.PageDTO{}, res.Err
	}
	if !s.relevant(gen) {
		return nil, dto.PageDTO{}, ErrStale
	}
	page := res.Data.(api.Page[entity.Product])
	s.applyMeta(page.Meta)
	return table.FlattenProducts(page.Items, s.Expansion), s.pageDTO(), res.Err
}

// LoadedProductIDs ids de producto de la página cargada (para ExpandAll).
func (s *ProductsScreen) LoadedProductIDs(rows []table.Row) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.Level == table.LevelProduct {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
