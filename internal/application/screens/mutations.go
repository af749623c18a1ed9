package screens

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/application/forms"
	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/cache"
	"github.com/tu-usuario/moda-backoffice/pkg/logger"
)

// Mutations ejecuta las mutaciones de la consola: envía el payload del
// formulario al backend e invalida la familia de claves de caché afectada.
// Toda mutación da la vuelta por el servidor; el cliente nunca actualiza
// StockSummary ni StockMovement por su cuenta.
type Mutations struct {
	backend Backend
	cache   *cache.QueryCache
	log     *logger.Logger
}

// NewMutations construye el servicio de mutaciones.
func NewMutations(backend Backend, qc *cache.QueryCache, log *logger.Logger) *Mutations {
	return &Mutations{backend: backend, cache: qc, log: log.Component("mutations")}
}

// CreateCustomer alta de cliente; invalida el listado de clientes.
func (m *Mutations) CreateCustomer(ctx context.Context, f forms.CustomerForm) (*entity.Customer, error) {
	out, err := m.backend.CreateCustomer(ctx, f.Payload())
	if err != nil {
		return nil, err
	}
	m.cache.Invalidate(ResourceCustomers)
	return out, nil
}

// UpdateCustomer edición de cliente.
func (m *Mutations) UpdateCustomer(ctx context.Context, id string, f forms.CustomerForm) (*entity.Customer, error) {
	out, err := m.backend.UpdateCustomer(ctx, id, f.Payload())
	if err != nil {
		return nil, err
	}
	m.cache.Invalidate(ResourceCustomers)
	return out, nil
}

// CreateProduct alta de producto. Invalida también la familia de bodega:
// variantes nuevas aparecen como filas del resumen de inventario.
func (m *Mutations) CreateProduct(ctx context.Context, f forms.ProductForm) (*entity.Product, error) {
	out, err := m.backend.CreateProduct(ctx, f.Payload())
	if err != nil {
		return nil, err
	}
	m.cache.Invalidate(ResourceProducts)
	m.cache.Invalidate(ResourceWarehouse)
	return out, nil
}

// UpdateProduct edición de producto.
func (m *Mutations) UpdateProduct(ctx context.Context, id string, f forms.ProductForm) (*entity.Product, error) {
	out, err := m.backend.UpdateProduct(ctx, id, f.Payload())
	if err != nil {
		return nil, err
	}
	m.cache.Invalidate(ResourceProducts)
	m.cache.Invalidate(ResourceWarehouse)
	return out, nil
}

// CreateOrder alta de orden. Invalida órdenes, clientes (el historial de
// compras del cliente cambia) y bodega (el despacho puede mover stock).
func (m *Mutations) CreateOrder(ctx context.Context, f forms.OrderForm) (*entity.Order, error) {
	out, err := m.backend.CreateOrder(ctx, f.Payload())
	if err != nil {
		return nil, err
	}
	m.invalidateOrderFamily()
	return out, nil
}

// UpdateOrder edición de orden.
func (m *Mutations) UpdateOrder(ctx context.Context, id string, f forms.OrderForm) (*entity.Order, error) {
	out, err := m.backend.UpdateOrder(ctx, id, f.Payload())
	if err != nil {
		return nil, err
	}
	m.invalidateOrderFamily()
	return out, nil
}

func (m *Mutations) invalidateOrderFamily() {
	m.cache.Invalidate(ResourceOrders)
	m.cache.Invalidate(ResourceCustomers)
	m.cache.Invalidate(ResourceWarehouse)
}

// StockIn registra una entrada de stock e invalida la familia de bodega:
// la próxima lectura del resumen viene del servidor, que es quien acumula.
func (m *Mutations) StockIn(ctx context.Context, f forms.StockInForm) (*entity.StockMovement, error) {
	mov, err := m.backend.StockIn(ctx, f.Payload())
	if err != nil {
		return nil, err
	}
	m.cache.Invalidate(ResourceWarehouse)
	m.log.Info().Str("variant_id", f.VariantID).Str("qty", f.Quantity.String()).Msg("entrada de stock registrada")
	return mov, nil
}

// StockOut registra una salida de stock. Antes de tocar la red aplica el
// guard local contra el stock actual del resumen cacheado (si está cargado);
// una salida mayor al disponible se rechaza sin despacho.
func (m *Mutations) StockOut(ctx context.Context, f forms.StockOutForm) (*entity.StockMovement, error) {
	if current, ok := m.cachedStock(f.VariantID); ok {
		if err := f.CheckAvailable(current); err != nil {
			return nil, err
		}
	}
	mov, err := m.backend.StockOut(ctx, f.Payload())
	if err != nil {
		return nil, err
	}
	m.cache.Invalidate(ResourceWarehouse)
	m.log.Info().Str("variant_id", f.VariantID).Str("qty", f.Quantity.String()).Msg("salida de stock registrada")
	return mov, nil
}

// cachedStock busca el stock actual de la variante en el resumen cacheado.
// Sin resumen cargado no hay guard local: decide el servidor.
func (m *Mutations) cachedStock(variantID string) (current decimal.Decimal, ok bool) {
	value, found := m.cache.Peek(keySummary)
	if !found {
		return decimal.Zero, false
	}
	summaries, castOK := value.([]entity.StockSummary)
	if !castOK {
		return decimal.Zero, false
	}
	for _, s := range summaries {
		if s.VariantID == variantID {
			return s.CurrentStock, true
		}
	}
	return decimal.Zero, false
}
