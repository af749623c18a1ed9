package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Classify
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: cada rango cae en su nivel, bordes incluidos.
func TestClassify_RangosYBordes(t *testing.T) {
	cases := []struct {
		name  string
		stock string
		want  stock.Level
	}{
		{"cero es agotado", "0", stock.LevelOutOfStock},
		{"negativo es agotado", "-3", stock.LevelOutOfStock},
		{"fraccion minima es bajo", "0.5", stock.LevelLow},
		{"justo debajo del umbral bajo", "9.99", stock.LevelLow},
		{"borde 10 es medio", "10", stock.LevelMedium},
		{"justo debajo del umbral alto", "49.99", stock.LevelMedium},
		{"borde 50 es alto", "50", stock.LevelHigh},
		{"muy por encima es alto", "1200", stock.LevelHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.Classify(decimal.RequireFromString(tc.stock))
			assert.Equal(t, tc.want, got)
		})
	}
}

// Caso 2: Valid reconoce los cuatro niveles y rechaza lo demás.
func TestValid_NivelesConocidos(t *testing.T) {
	assert.True(t, stock.Valid("OUT_OF_STOCK"))
	assert.True(t, stock.Valid("LOW"))
	assert.True(t, stock.Valid("MEDIUM"))
	assert.True(t, stock.Valid("HIGH"))

	assert.False(t, stock.Valid("low"), "los niveles distinguen mayúsculas")
	assert.False(t, stock.Valid(""))
	assert.False(t, stock.Valid("EMPTY"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeStats
// ──────────────────────────────────────────────────────────────────────────────

func summaryWithStock(id string, current int64) entity.StockSummary {
	return entity.StockSummary{VariantID: id, CurrentStock: decimal.NewFromInt(current)}
}

// Caso 3: las estadísticas usan la misma tabla de umbrales que Classify:
// InStock = MEDIUM ∪ HIGH, LowStock = LOW, OutOfStock = stock 0.
func TestComputeStats_CuentaPorNivel(t *testing.T) {
	feed := []entity.StockSummary{
		summaryWithStock("v1", 0),  // OUT_OF_STOCK
		summaryWithStock("v2", 5),  // LOW
		summaryWithStock("v3", 10), // MEDIUM → InStock
		summaryWithStock("v4", 60), // HIGH → InStock
		summaryWithStock("v5", 49), // MEDIUM → InStock
	}

	st := stock.ComputeStats(feed)

	assert.Equal(t, 5, st.TotalProducts)
	assert.Equal(t, 3, st.InStock)
	assert.Equal(t, 1, st.LowStock)
	assert.Equal(t, 1, st.OutOfStock)
}

// Caso 3b: feed vacío produce estadísticas en cero, no un error.
func TestComputeStats_FeedVacio(t *testing.T) {
	st := stock.ComputeStats(nil)

	assert.Zero(t, st.TotalProducts)
	assert.Zero(t, st.InStock)
	assert.Zero(t, st.LowStock)
	assert.Zero(t, st.OutOfStock)
}
