package table_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/moda-backoffice/internal/application/table"
	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
)

func sampleProducts() []entity.Product {
	return []entity.Product{
		{
			ID:       "p1",
			Name:     "Camiseta básica",
			Category: "shirts",
			Variants: []entity.Variant{
				{ID: "v1", ProductID: "p1", SKU: "CAM-S-NEG", Size: "S", Color: "negro", Gender: entity.GenderUnisex, Quantity: decimal.NewFromInt(4)},
				{ID: "v2", ProductID: "p1", SKU: "CAM-M-NEG", Size: "M", Color: "negro", Gender: entity.GenderUnisex, Quantity: decimal.NewFromInt(60)},
			},
		},
		{
			ID:   "p2",
			Name: "Vestido de verano",
			Variants: []entity.Variant{
				{ID: "v3", ProductID: "p2", SKU: "VES-U", Gender: entity.GenderWomen, Quantity: decimal.Zero},
			},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FlattenProducts
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: todo colapsado emite solo filas de producto, con el stock agregado
// de sus variantes.
func TestFlattenProducts_ColapsadoEmiteSoloProductos(t *testing.T) {
	rows := table.FlattenProducts(sampleProducts(), table.NewExpansion())

	require.Len(t, rows, 2)
	assert.Equal(t, "p1", rows[0].ID)
	assert.Equal(t, table.LevelProduct, rows[0].Level)
	assert.False(t, rows[0].Expanded)
	assert.Equal(t, 2, rows[0].VariantCount)
	assert.True(t, rows[0].Quantity.Equal(decimal.NewFromInt(64)),
		"el stock del producto es la suma de sus variantes")
	assert.Equal(t, "p2", rows[1].ID)
}

// Caso 2: un producto expandido emite sus variantes inmediatamente después,
// con nivel 1, ParentID y badge de stock derivado.
func TestFlattenProducts_ExpandidoIntercalaVariantes(t *testing.T) {
	exp := table.NewExpansion()
	exp.Toggle("p1")

	rows := table.FlattenProducts(sampleProducts(), exp)

	require.Len(t, rows, 4, "p1 expandido: 2 productos + 2 variantes")
	assert.True(t, rows[0].Expanded)

	v1 := rows[1]
	assert.Equal(t, table.LevelVariant, v1.Level)
	assert.Equal(t, "p1", v1.ParentID)
	assert.Equal(t, "CAM-S-NEG", v1.SKU)
	assert.Equal(t, "LOW", v1.StockBadge, "4 unidades se clasifican LOW")
	assert.Equal(t, "HIGH", rows[2].StockBadge, "60 unidades se clasifican HIGH")

	assert.Equal(t, "p2", rows[3].ID, "p2 sigue colapsado después de las variantes de p1")
}

// Caso 3: alternar dos veces vuelve al estado colapsado (round-trip).
func TestFlattenProducts_ToggleIdaYVuelta(t *testing.T) {
	exp := table.NewExpansion()
	products := sampleProducts()

	exp.Toggle("p1")
	require.Len(t, table.FlattenProducts(products, exp), 4)

	exp.Toggle("p1")
	rows := table.FlattenProducts(products, exp)
	require.Len(t, rows, 2, "colapsar de nuevo quita las filas de variante")
	assert.False(t, rows[0].Expanded)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Expansion
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: ExpandAll deja expandidos exactamente los ids cargados (lo
// expandido en otra página no sobrevive); CollapseAll vacía todo.
func TestExpansion_ExpandAllYCollapseAll(t *testing.T) {
	exp := table.NewExpansion()
	exp.Toggle("p-pagina-anterior")

	exp.ExpandAll([]string{"p1", "p2"})
	assert.True(t, exp.IsExpanded("p1"))
	assert.True(t, exp.IsExpanded("p2"))
	assert.False(t, exp.IsExpanded("p3"), "ids no cargados quedan fuera")
	assert.False(t, exp.IsExpanded("p-pagina-anterior"), "la expansión previa no se arrastra")
	assert.Equal(t, 2, exp.Count())

	exp.CollapseAll()
	assert.Zero(t, exp.Count())
	assert.False(t, exp.IsExpanded("p1"))
}

// Caso 5: el estado de expansión sobrevive a recargas de datos: aplanar con
// nuevas entidades respeta el conjunto vigente.
func TestExpansion_SobreviveRecargaDeDatos(t *testing.T) {
	exp := table.NewExpansion()
	exp.Toggle("p2")

	recargado := sampleProducts() // simula un refetch
	rows := table.FlattenProducts(recargado, exp)

	require.Len(t, rows, 3, "p2 sigue expandido tras recargar")
	assert.Equal(t, "v3", rows[2].ID)
}
