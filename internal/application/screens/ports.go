// Package screens contiene los view-models de las pantallas de gestión:
// componen paginación + búsqueda + query cache + cliente del backend para
// producir las filas y estadísticas que renderiza la UI.
package screens

import (
	"context"
	"errors"

	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/api"
)

// ErrStale marca una respuesta que llegó después de que la pantalla disparó
// una consulta más nueva. Sin cancelación de peticiones en vuelo, el guard
// "todavía relevante" descarta el resultado viejo en lugar de pintarlo.
var ErrStale = errors.New("respuesta obsoleta descartada")

// Backend puerto de salida hacia el backend REST. Lo implementa api.Client;
// los tests inyectan un doble.
type Backend interface {
	ListOrders(ctx context.Context, p api.ListParams) (api.Page[entity.Order], error)
	ListCustomers(ctx context.Context, p api.ListParams) (api.Page[entity.Customer], error)
	ListProducts(ctx context.Context, p api.ListParams) (api.Page[entity.Product], error)
	ListMovements(ctx context.Context, p api.ListParams) (api.Page[entity.StockMovement], error)
	ListWarehouses(ctx context.Context, p api.ListParams) (api.Page[entity.Warehouse], error)

	GetStockSummary(ctx context.Context) ([]entity.StockSummary, error)
	GetDashboardSummary(ctx context.Context) (*api.DashboardSummary, error)
	GetDashboardStockSummary(ctx context.Context) ([]entity.StockSummary, error)

	CreateCustomer(ctx context.Context, payload api.CustomerPayload) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id string, payload api.CustomerPayload) (*entity.Customer, error)
	CreateProduct(ctx context.Context, payload api.ProductPayload) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, payload api.ProductPayload) (*entity.Product, error)
	CreateOrder(ctx context.Context, payload api.OrderPayload) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id string, payload api.OrderPayload) (*entity.Order, error)
	StockIn(ctx context.Context, payload api.StockMovementPayload) (*entity.StockMovement, error)
	StockOut(ctx context.Context, payload api.StockMovementPayload) (*entity.StockMovement, error)
}

// Claves de caché por familia de recurso. La invalidación es por prefijo:
// invalidar "warehouse" alcanza movimientos, resumen y tablero.
const (
	ResourceOrders    = "orders"
	ResourceCustomers = "customers"
	ResourceProducts  = "products"
	ResourceWarehouse = "warehouse"

	keyMovements      = ResourceWarehouse + ":movements"
	keySummary        = ResourceWarehouse + ":summary"
	keyDashboard      = ResourceWarehouse + ":dashboard"
	keyDashboardStock = ResourceWarehouse + ":dashboard-stock"
)
