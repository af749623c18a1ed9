package forms

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/domain"
	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/api"
)

// StockInForm formulario de entrada de stock.
type StockInForm struct {
	VariantID  string          `json:"variant_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gt=0"`
	ReasonType string          `json:"reason_type" validate:"omitempty,oneof=PURCHASE RETURN ADJUSTMENT TRANSFER_IN"`
	Reason     string          `json:"reason" validate:"omitempty,max=500"`
}

// NewStockInForm valores por defecto, con el motivo más común preseleccionado.
func NewStockInForm(variantID string) StockInForm {
	return StockInForm{VariantID: variantID, ReasonType: entity.ReasonPurchase}
}

// Payload construye el cuerpo de POST /warehouse/stock-in.
func (f StockInForm) Payload() api.StockMovementPayload {
	return api.StockMovementPayload{
		VariantID:  f.VariantID,
		Quantity:   f.Quantity,
		ReasonType: f.ReasonType,
		Reason:     f.Reason,
	}
}

// StockOutForm formulario de salida de stock. OrderID se llena cuando la
// salida proviene del despacho de una orden (fulfillment).
type StockOutForm struct {
	VariantID  string          `json:"variant_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gt=0"`
	ReasonType string          `json:"reason_type" validate:"omitempty,oneof=SALE DAMAGED ADJUSTMENT TRANSFER_OUT"`
	Reason     string          `json:"reason" validate:"omitempty,max=500"`
	OrderID    string          `json:"order_id"`
}

// NewStockOutForm valores por defecto.
func NewStockOutForm(variantID string) StockOutForm {
	return StockOutForm{VariantID: variantID, ReasonType: entity.ReasonSale}
}

// CheckAvailable es la validación local contra el stock actual conocido:
// una salida mayor al disponible se rechaza ANTES de cualquier despacho de
// red (misma condición que deshabilita el botón de envío en la UI).
// El servidor repite la verificación con autoridad; esto solo ahorra el viaje.
func (f StockOutForm) CheckAvailable(currentStock decimal.Decimal) error {
	if f.Quantity.GreaterThan(currentStock) {
		return &domain.InsufficientStockError{
			VariantID:    f.VariantID,
			CurrentStock: currentStock,
			Requested:    f.Quantity,
		}
	}
	return nil
}

// Payload construye el cuerpo de POST /warehouse/stock-out.
func (f StockOutForm) Payload() api.StockMovementPayload {
	return api.StockMovementPayload{
		VariantID:  f.VariantID,
		Quantity:   f.Quantity,
		ReasonType: f.ReasonType,
		Reason:     f.Reason,
		OrderID:    f.OrderID,
	}
}
