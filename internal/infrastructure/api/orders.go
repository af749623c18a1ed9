package api

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
)

// orderItemWire línea de orden en el contrato REST.
type orderItemWire struct {
	ID         string          `json:"id"`
	VariantID  string          `json:"variant_id"`
	SKU        string          `json:"sku"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// orderWire forma JSON de la orden de venta.
type orderWire struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	Items           []orderItemWire `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (w orderWire) toEntity() entity.Order {
	items := make([]entity.OrderItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, entity.OrderItem{
			ID:         it.ID,
			VariantID:  it.VariantID,
			SKU:        it.SKU,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return entity.Order{
		ID:              w.ID,
		Code:            w.Code,
		CustomerID:      w.CustomerID,
		CustomerName:    w.CustomerName,
		Status:          w.Status,
		ShippingAddress: w.ShippingAddress,
		Items:           items,
		TotalAmount:     w.TotalAmount,
		CreatedBy:       w.CreatedBy,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

// OrderItemPayload línea dentro de crear/actualizar orden.
type OrderItemPayload struct {
	VariantID string          `json:"variant_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderPayload cuerpo para crear/actualizar una orden de venta.
type OrderPayload struct {
	CustomerID      string             `json:"customer_id"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	Items           []OrderItemPayload `json:"items"`
}

// ListOrders GET /orders.
func (c *Client) ListOrders(ctx context.Context, p ListParams) (Page[entity.Order], error) {
	raw, err := c.do(ctx, http.MethodGet, "/orders", p.values(), nil)
	if err != nil {
		return Page[entity.Order]{}, err
	}
	page, err := decodePage[orderWire](raw)
	if err != nil {
		return Page[entity.Order]{}, err
	}
	items := make([]entity.Order, 0, len(page.Items))
	for _, w := range page.Items {
		items = append(items, w.toEntity())
	}
	return Page[entity.Order]{Items: items, Meta: page.Meta}, nil
}

// CreateOrder POST /orders.
func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) (*entity.Order, error) {
	var w orderWire
	if err := c.post(ctx, "/orders", payload, &w); err != nil {
		return nil, err
	}
	out := w.toEntity()
	return &out, nil
}

// UpdateOrder PUT /orders/{id}.
func (c *Client) UpdateOrder(ctx context.Context, id string, payload OrderPayload) (*entity.Order, error) {
	var w orderWire
	if err := c.put(ctx, "/orders/"+id, payload, &w); err != nil {
		return nil, err
	}
	out := w.toEntity()
	return &out, nil
}
