package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Motivos de movimiento según el contrato del backend.
const (
	ReasonPurchase    = "PURCHASE"     // compra a proveedor
	ReasonReturn      = "RETURN"       // devolución de cliente
	ReasonSale        = "SALE"         // salida por orden de venta
	ReasonDamaged     = "DAMAGED"      // merma por daño
	ReasonAdjustment  = "ADJUSTMENT"   // ajuste de conteo físico
	ReasonTransferIn  = "TRANSFER_IN"  // traslado entrante
	ReasonTransferOut = "TRANSFER_OUT" // traslado saliente
)

// StockMovement representa un movimiento de inventario (entrada o salida).
// Inmutable una vez creado: la consola solo crea movimientos nuevos vía
// stock-in/stock-out, nunca edita ni elimina.
type StockMovement struct {
	ID         string
	VariantID  string
	OrderID    string          // vacío si el movimiento no proviene de una orden
	Type       string          // IN, OUT
	Quantity   decimal.Decimal // siempre >= 0; el signo lo da Type
	ReasonType string
	Reason     string // texto libre
	Variant    *Variant
	CreatedBy  string
	CreatedAt  time.Time
}
