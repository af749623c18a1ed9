package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusFulfilled = "FULFILLED" // ítems convertidos en salidas de stock
	OrderStatusCancelled = "CANCELLED"
)

// OrderItem línea de una orden: una variante con cantidad y precio unitario.
type OrderItem struct {
	ID         string
	VariantID  string
	SKU        string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // Quantity * UnitPrice, calculado por el servidor
}

// Order representa una orden de venta.
type Order struct {
	ID              string
	Code            string
	CustomerID      string
	CustomerName    string
	Status          string
	ShippingAddress string
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
