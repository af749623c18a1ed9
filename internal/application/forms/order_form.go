package forms

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/api"
)

// OrderItemForm línea del formulario de orden. TotalPrice es un campo
// derivado: Recalculate lo recomputa; nunca lo escribe el usuario.
type OrderItemForm struct {
	VariantID  string          `json:"variant_id" validate:"required"`
	SKU        string          `json:"sku"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price" validate:"gte=0"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderForm formulario de alta/edición de orden de venta.
type OrderForm struct {
	CustomerID      string          `json:"customer_id" validate:"required"`
	ShippingAddress string          `json:"shipping_address" validate:"omitempty,max=300"`
	Items           []OrderItemForm `json:"items" validate:"required,min=1,dive"`
	TotalAmount     decimal.Decimal `json:"total_amount"` // derivado
}

// NewOrderForm valores por defecto: vacío al crear, precargado al editar.
func NewOrderForm(existing *entity.Order) OrderForm {
	if existing == nil {
		return OrderForm{}
	}
	items := make([]OrderItemForm, 0, len(existing.Items))
	for _, it := range existing.Items {
		items = append(items, OrderItemForm{
			VariantID:  it.VariantID,
			SKU:        it.SKU,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	f := OrderForm{
		CustomerID:      existing.CustomerID,
		ShippingAddress: existing.ShippingAddress,
		Items:           items,
	}
	f.Recalculate()
	return f
}

// Recalculate recomputa los campos derivados a partir de sus entradas:
// total por línea = cantidad × precio unitario, y total de la orden = suma
// de líneas. Se invoca tras cada cambio de cantidad o precio; es una función
// pura de los campos, no un efecto del handler que disparó el cambio.
func (f *OrderForm) Recalculate() {
	total := decimal.Zero
	for i := range f.Items {
		f.Items[i].TotalPrice = f.Items[i].Quantity.Mul(f.Items[i].UnitPrice)
		total = total.Add(f.Items[i].TotalPrice)
	}
	f.TotalAmount = total
}

// AutofillShipping copia la dirección del cliente seleccionado si el campo
// está vacío (autocompletado derivado, no destructivo: no pisa lo tecleado).
func (f *OrderForm) AutofillShipping(customer *entity.Customer) {
	if customer == nil || f.ShippingAddress != "" {
		return
	}
	f.ShippingAddress = customer.Address
}

// Payload construye el cuerpo del contrato REST. Los totales no viajan:
// el servidor los recalcula y es autoritativo.
func (f OrderForm) Payload() api.OrderPayload {
	items := make([]api.OrderItemPayload, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, api.OrderItemPayload{
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return api.OrderPayload{
		CustomerID:      f.CustomerID,
		ShippingAddress: f.ShippingAddress,
		Items:           items,
	}
}
