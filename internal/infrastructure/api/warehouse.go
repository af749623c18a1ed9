package api

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
)

// movementWire forma JSON del movimiento de inventario.
type movementWire struct {
	ID         string          `json:"id"`
	VariantID  string          `json:"variant_id"`
	OrderID    string          `json:"order_id"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	ReasonType string          `json:"reason_type"`
	Reason     string          `json:"reason"`
	Variant    *variantWire    `json:"variant"`
	CreatedBy  string          `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (w movementWire) toEntity() entity.StockMovement {
	mov := entity.StockMovement{
		ID:         w.ID,
		VariantID:  w.VariantID,
		OrderID:    w.OrderID,
		Type:       w.Type,
		Quantity:   w.Quantity,
		ReasonType: w.ReasonType,
		Reason:     w.Reason,
		CreatedBy:  w.CreatedBy,
		CreatedAt:  w.CreatedAt,
	}
	if w.Variant != nil {
		v := w.Variant.toEntity()
		mov.Variant = &v
	}
	return mov
}

// summaryWire forma JSON del resumen de stock por variante.
type summaryWire struct {
	VariantID     string          `json:"variant_id"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	TotalStockIn  decimal.Decimal `json:"total_stock_in"`
	TotalStockOut decimal.Decimal `json:"total_stock_out"`
	Variant       *variantWire    `json:"variant"`
}

func (w summaryWire) toEntity() entity.StockSummary {
	s := entity.StockSummary{
		VariantID:     w.VariantID,
		CurrentStock:  w.CurrentStock,
		TotalStockIn:  w.TotalStockIn,
		TotalStockOut: w.TotalStockOut,
	}
	if w.Variant != nil {
		v := w.Variant.toEntity()
		s.Variant = &v
	}
	return s
}

// warehouseWire forma JSON de la bodega.
type warehouseWire struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockMovementPayload cuerpo para POST /warehouse/stock-in y /warehouse/stock-out.
type StockMovementPayload struct {
	VariantID  string          `json:"variant_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason,omitempty"`
	ReasonType string          `json:"reason_type,omitempty"`
	OrderID    string          `json:"order_id,omitempty"`
}

// DashboardSummary snapshot agregado para los widgets del tablero.
type DashboardSummary struct {
	TotalOrders    int             `json:"total_orders"`
	PendingOrders  int             `json:"pending_orders"`
	TotalCustomers int             `json:"total_customers"`
	TodayRevenue   decimal.Decimal `json:"today_revenue"`
}

// ListMovements GET /warehouse/movements (paginado).
func (c *Client) ListMovements(ctx context.Context, p ListParams) (Page[entity.StockMovement], error) {
	raw, err := c.do(ctx, http.MethodGet, "/warehouse/movements", p.values(), nil)
	if err != nil {
		return Page[entity.StockMovement]{}, err
	}
	page, err := decodePage[movementWire](raw)
	if err != nil {
		return Page[entity.StockMovement]{}, err
	}
	items := make([]entity.StockMovement, 0, len(page.Items))
	for _, w := range page.Items {
		items = append(items, w.toEntity())
	}
	return Page[entity.StockMovement]{Items: items, Meta: page.Meta}, nil
}

// ListWarehouses GET /warehouses.
func (c *Client) ListWarehouses(ctx context.Context, p ListParams) (Page[entity.Warehouse], error) {
	raw, err := c.do(ctx, http.MethodGet, "/warehouses", p.values(), nil)
	if err != nil {
		return Page[entity.Warehouse]{}, err
	}
	page, err := decodePage[warehouseWire](raw)
	if err != nil {
		return Page[entity.Warehouse]{}, err
	}
	items := make([]entity.Warehouse, 0, len(page.Items))
	for _, w := range page.Items {
		items = append(items, entity.Warehouse{
			ID: w.ID, Name: w.Name, Address: w.Address,
			CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt,
		})
	}
	return Page[entity.Warehouse]{Items: items, Meta: page.Meta}, nil
}

// GetStockSummary GET /warehouse/summary: feed completo sin paginar.
// El servidor devuelve todas las filas; la paginación sobre este feed es una
// ventana en memoria de la pantalla de inventario.
func (c *Client) GetStockSummary(ctx context.Context) ([]entity.StockSummary, error) {
	raw, err := c.do(ctx, http.MethodGet, "/warehouse/summary", nil, nil)
	if err != nil {
		return nil, err
	}
	page, err := decodePage[summaryWire](raw)
	if err != nil {
		return nil, err
	}
	items := make([]entity.StockSummary, 0, len(page.Items))
	for _, w := range page.Items {
		items = append(items, w.toEntity())
	}
	return items, nil
}

// GetDashboardSummary GET /warehouse/dashboard-summary.
func (c *Client) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var out DashboardSummary
	if err := c.get(ctx, "/warehouse/dashboard-summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDashboardStockSummary GET /warehouse/dashboard-stock-summary:
// mismo contrato del feed de resumen, recortado por el servidor para el tablero.
func (c *Client) GetDashboardStockSummary(ctx context.Context) ([]entity.StockSummary, error) {
	raw, err := c.do(ctx, http.MethodGet, "/warehouse/dashboard-stock-summary", nil, nil)
	if err != nil {
		return nil, err
	}
	page, err := decodePage[summaryWire](raw)
	if err != nil {
		return nil, err
	}
	items := make([]entity.StockSummary, 0, len(page.Items))
	for _, w := range page.Items {
		items = append(items, w.toEntity())
	}
	return items, nil
}

// StockIn POST /warehouse/stock-in; devuelve el movimiento creado.
func (c *Client) StockIn(ctx context.Context, payload StockMovementPayload) (*entity.StockMovement, error) {
	var w movementWire
	if err := c.post(ctx, "/warehouse/stock-in", payload, &w); err != nil {
		return nil, err
	}
	mov := w.toEntity()
	return &mov, nil
}

// StockOut POST /warehouse/stock-out; devuelve el movimiento creado.
// Un rechazo por stock insuficiente llega como *domain.InsufficientStockError.
func (c *Client) StockOut(ctx context.Context, payload StockMovementPayload) (*entity.StockMovement, error) {
	var w movementWire
	if err := c.post(ctx, "/warehouse/stock-out", payload, &w); err != nil {
		return nil, err
	}
	mov := w.toEntity()
	return &mov, nil
}
