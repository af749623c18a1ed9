package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/moda-backoffice/internal/application/state"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Search
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: cualquier mutación del criterio vuelve a la página 1.
func TestSearch_MutacionesReinicianPaginacion(t *testing.T) {
	p := state.NewPagination()
	p.TotalPages = 9
	s := state.NewSearch(p)

	p.SetPage(5)
	s.SetQuery("camiseta")
	assert.Equal(t, 1, p.CurrentPage, "SetQuery debe volver a la página 1")

	p.SetPage(5)
	s.SetFilter("stock_level", "LOW")
	assert.Equal(t, 1, p.CurrentPage, "SetFilter debe volver a la página 1")

	p.SetPage(5)
	s.ClearFilters()
	assert.Equal(t, 1, p.CurrentPage, "ClearFilters debe volver a la página 1")
	assert.Empty(t, s.Query)
	assert.Empty(t, s.Filters)
}

// Caso 2: un valor vacío elimina el filtro en vez de guardarlo vacío.
func TestSearch_FiltroVacioSeElimina(t *testing.T) {
	s := state.NewSearch(state.NewPagination())

	s.SetFilter("status", "PENDING")
	assert.Equal(t, "PENDING", s.Filter("status"))

	s.SetFilter("status", "")
	assert.Empty(t, s.Filter("status"))
	assert.NotContains(t, s.Filters, "status", "el filtro vacío no debe quedar en el mapa")
}

// Caso 3: QueryParams incluye q solo si hay texto, más los filtros activos.
func TestSearch_QueryParams(t *testing.T) {
	s := state.NewSearch(state.NewPagination())
	s.SetFilter("gender", "WOMEN")

	params := s.QueryParams()
	assert.NotContains(t, params, "q", "sin texto libre no debe ir el parámetro q")
	assert.Equal(t, "WOMEN", params["gender"])

	s.SetQuery("vestido")
	params = s.QueryParams()
	assert.Equal(t, "vestido", params["q"])
}

// Caso 4: el sufijo de clave de caché es determinista sin importar el orden
// de inserción de los filtros.
func TestSearch_CacheKeySuffixDeterminista(t *testing.T) {
	a := state.NewSearch(state.NewPagination())
	a.SetQuery("polo")
	a.SetFilter("gender", "MEN")
	a.SetFilter("category", "shirts")

	b := state.NewSearch(state.NewPagination())
	b.SetFilter("category", "shirts")
	b.SetQuery("polo")
	b.SetFilter("gender", "MEN")

	assert.Equal(t, a.CacheKeySuffix(), b.CacheKeySuffix(),
		"mismos parámetros deben producir la misma clave de caché")
	assert.Equal(t, "category=shirts&gender=MEN&q=polo&", a.CacheKeySuffix())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MatchesQuery
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: la consulta vacía empareja con todo.
func TestMatchesQuery_ConsultaVaciaSiempreEmpareja(t *testing.T) {
	assert.True(t, state.MatchesQuery("", "cualquier", "cosa"))
	assert.True(t, state.MatchesQuery(""))
}

// Caso 6: emparejamiento por subcadena sobre la concatenación de campos,
// sin distinguir mayúsculas.
func TestMatchesQuery_SubcadenaSinMayusculas(t *testing.T) {
	assert.True(t, state.MatchesQuery("CAMI", "SKU-001", "Camiseta básica"))
	assert.True(t, state.MatchesQuery("sku-001", "SKU-001", "Camiseta básica"))
	assert.False(t, state.MatchesQuery("pantalón", "SKU-001", "Camiseta básica"))
}

// Caso 6b: case folding Unicode, no solo ASCII.
func TestMatchesQuery_CaseFoldingUnicode(t *testing.T) {
	assert.True(t, state.MatchesQuery("Ñandú", "calzado ñandú edición limitada"),
		"Ñ/ñ deben plegarse como la misma letra")
	assert.True(t, state.MatchesQuery("édition", "ÉDITION SPÉCIALE"))
}
