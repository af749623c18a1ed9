package forms_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/moda-backoffice/internal/application/forms"
	"github.com/tu-usuario/moda-backoffice/internal/domain"
	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Validate
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: un formulario válido pasa sin errores.
func TestValidate_ClienteValido(t *testing.T) {
	f := forms.CustomerForm{Name: "Ana Gómez", Email: "ana@example.com", City: "Bogotá"}
	assert.Nil(t, forms.Validate(f))
}

// Caso 2: los errores se reportan por nombre de campo json, con mensaje en
// español, y un formulario inválido nunca produce payload de red.
func TestValidate_ClienteInvalidoReportaPorCampo(t *testing.T) {
	f := forms.CustomerForm{Name: "", Email: "no-es-un-email"}

	errs := forms.Validate(f)

	require.NotNil(t, errs)
	assert.Contains(t, errs, "name")
	assert.Equal(t, "es requerido", errs["name"])
	assert.Contains(t, errs, "email")
	assert.Equal(t, "no es un email válido", errs["email"])
}

// Caso 2b: los errores de líneas anidadas llevan la ruta completa del campo.
func TestValidate_OrdenConLineaInvalida(t *testing.T) {
	f := forms.OrderForm{
		CustomerID: "c1",
		Items: []forms.OrderItemForm{
			{VariantID: "v1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10)},
			{VariantID: "", Quantity: decimal.Zero},
		},
	}

	errs := forms.Validate(f)

	require.NotNil(t, errs)
	assert.Contains(t, errs, "items[1].variant_id")
	assert.Contains(t, errs, "items[1].quantity", "cantidad 0 viola gt=0")
}

// Caso 2c: una orden sin líneas es inválida.
func TestValidate_OrdenSinLineas(t *testing.T) {
	f := forms.OrderForm{CustomerID: "c1"}

	errs := forms.Validate(f)

	require.NotNil(t, errs)
	assert.Contains(t, errs, "items")
}

// Caso 3: los catálogos cerrados (oneof) rechazan valores fuera de lista.
func TestValidate_MotivoFueraDeCatalogo(t *testing.T) {
	f := forms.NewStockInForm("v1")
	f.Quantity = decimal.NewFromInt(5)
	f.ReasonType = "SALE" // motivo de salida, no de entrada

	errs := forms.Validate(f)

	require.NotNil(t, errs)
	assert.Contains(t, errs, "reason_type")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OrderForm
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: Recalculate recomputa total por línea y total de la orden; el
// usuario nunca escribe los derivados.
func TestOrderForm_RecalculateDerivados(t *testing.T) {
	f := forms.OrderForm{
		CustomerID: "c1",
		Items: []forms.OrderItemForm{
			{VariantID: "v1", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.RequireFromString("19.90")},
			{VariantID: "v2", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("45.50")},
		},
	}

	f.Recalculate()

	assert.True(t, f.Items[0].TotalPrice.Equal(decimal.RequireFromString("59.70")))
	assert.True(t, f.Items[1].TotalPrice.Equal(decimal.RequireFromString("45.50")))
	assert.True(t, f.TotalAmount.Equal(decimal.RequireFromString("105.20")),
		"el total de la orden es la suma de las líneas")
}

// Caso 4b: editar una cantidad y recalcular actualiza los derivados; la
// función es pura respecto de sus entradas.
func TestOrderForm_RecalculateTrasEditar(t *testing.T) {
	f := forms.OrderForm{
		Items: []forms.OrderItemForm{
			{VariantID: "v1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)},
		},
	}
	f.Recalculate()
	require.True(t, f.TotalAmount.Equal(decimal.NewFromInt(10)))

	f.Items[0].Quantity = decimal.NewFromInt(4)
	f.Recalculate()

	assert.True(t, f.TotalAmount.Equal(decimal.NewFromInt(40)))
}

// Caso 5: el autocompletado de dirección no pisa lo tecleado por el usuario.
func TestOrderForm_AutofillShippingNoDestructivo(t *testing.T) {
	cliente := &entity.Customer{ID: "c1", Address: "Calle 10 #5-21"}

	f := forms.OrderForm{}
	f.AutofillShipping(cliente)
	assert.Equal(t, "Calle 10 #5-21", f.ShippingAddress, "campo vacío se autocompleta")

	f.ShippingAddress = "Carrera 7 #45-10"
	f.AutofillShipping(cliente)
	assert.Equal(t, "Carrera 7 #45-10", f.ShippingAddress, "lo tecleado se conserva")
}

// Caso 6: el payload no incluye los totales; el servidor es autoritativo.
func TestOrderForm_PayloadSinTotales(t *testing.T) {
	f := forms.OrderForm{
		CustomerID: "c1",
		Items: []forms.OrderItemForm{
			{VariantID: "v1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(15)},
		},
	}
	f.Recalculate()

	payload := f.Payload()

	require.Len(t, payload.Items, 1)
	assert.Equal(t, "v1", payload.Items[0].VariantID)
	assert.Equal(t, "c1", payload.CustomerID)
}

// Caso 7: NewOrderForm con una orden existente precarga y recalcula.
func TestNewOrderForm_ModoEditar(t *testing.T) {
	existente := &entity.Order{
		CustomerID:      "c9",
		ShippingAddress: "Av. Siempre Viva 123",
		Items: []entity.OrderItem{
			{VariantID: "v1", SKU: "CAM-S", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(20)},
		},
	}

	f := forms.NewOrderForm(existente)

	assert.Equal(t, "c9", f.CustomerID)
	require.Len(t, f.Items, 1)
	assert.True(t, f.TotalAmount.Equal(decimal.NewFromInt(40)), "los derivados se recomputan al precargar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests StockOutForm
// ──────────────────────────────────────────────────────────────────────────────

// Caso 8: una salida mayor al stock conocido se rechaza antes de la red, con
// el detalle de stock actual vs solicitado.
func TestStockOutForm_CheckAvailableRechazaSobregiro(t *testing.T) {
	f := forms.NewStockOutForm("v1")
	f.Quantity = decimal.NewFromInt(8)

	err := f.CheckAvailable(decimal.NewFromInt(5))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var detail *domain.InsufficientStockError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "v1", detail.VariantID)
	assert.True(t, detail.CurrentStock.Equal(decimal.NewFromInt(5)))
	assert.True(t, detail.Requested.Equal(decimal.NewFromInt(8)))
}

// Caso 8b: sacar exactamente el stock disponible es válido.
func TestStockOutForm_CheckAvailableBordeExacto(t *testing.T) {
	f := forms.NewStockOutForm("v1")
	f.Quantity = decimal.NewFromInt(5)

	assert.NoError(t, f.CheckAvailable(decimal.NewFromInt(5)))
}

// Caso 9: los constructores preseleccionan el motivo más común por dirección.
func TestNewStockForms_MotivosPorDefecto(t *testing.T) {
	in := forms.NewStockInForm("v1")
	assert.Equal(t, entity.ReasonPurchase, in.ReasonType)

	out := forms.NewStockOutForm("v1")
	assert.Equal(t, entity.ReasonSale, out.ReasonType)
}
