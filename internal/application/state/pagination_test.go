package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/moda-backoffice/internal/application/state"
)

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Pagination
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: estado inicial con los valores por defecto.
func TestPagination_ValoresPorDefecto(t *testing.T) {
	p := state.NewPagination()

	assert.Equal(t, 1, p.CurrentPage, "la página inicial debe ser 1")
	assert.Equal(t, state.DefaultLimit, p.RecordsPerPage)
	assert.False(t, p.CanGoPrev(), "sin páginas anteriores en el estado inicial")
	assert.False(t, p.CanGoNext(), "sin totales conocidos no hay página siguiente")
}

// Caso 2: SetPage acota por abajo y, con totales conocidos, por arriba.
func TestPagination_SetPageAcotaAlRango(t *testing.T) {
	p := state.NewPagination()
	p.TotalPages = 5

	p.SetPage(0)
	assert.Equal(t, 1, p.CurrentPage, "página menor a 1 se acota a 1")

	p.SetPage(99)
	assert.Equal(t, 5, p.CurrentPage, "página mayor al total se acota al total")

	p.SetPage(3)
	assert.Equal(t, 3, p.CurrentPage)
}

// Caso 2b: con totales desconocidos (antes del primer load) se respeta la
// página pedida; el Update posterior reacota si hace falta.
func TestPagination_SetPageSinTotalesNoAcotaPorArriba(t *testing.T) {
	p := state.NewPagination()

	p.SetPage(7)
	assert.Equal(t, 7, p.CurrentPage, "deep link a página 7 antes del primer load")

	p.Update(state.PaginationUpdate{TotalPages: intPtr(3), TotalRecords: intPtr(25)})
	assert.Equal(t, 3, p.CurrentPage, "el primer load reacota al total real")
}

// Caso 3: cambiar el tamaño de página SIEMPRE vuelve a la página 1.
func TestPagination_SetLimitReiniciaPagina(t *testing.T) {
	p := state.NewPagination()
	p.TotalPages = 10
	p.SetPage(7)

	p.SetLimit(25)

	assert.Equal(t, 25, p.RecordsPerPage)
	assert.Equal(t, 1, p.CurrentPage, "cambiar el límite debe volver a la página 1")
}

// Caso 3b: límites inválidos caen al default y al máximo permitido.
func TestPagination_SetLimitAcotaValores(t *testing.T) {
	p := state.NewPagination()

	p.SetLimit(0)
	assert.Equal(t, state.DefaultLimit, p.RecordsPerPage, "límite inválido usa el default")

	p.SetLimit(1000)
	assert.Equal(t, state.MaxLimit, p.RecordsPerPage, "límite excesivo se acota al máximo")
}

// Caso 4: navegación en los bordes es un no-op, nunca un error ni un fuera de rango.
func TestPagination_NavegacionEnBordesEsNoOp(t *testing.T) {
	p := state.NewPagination()
	p.TotalPages = 3

	p.PrevPage()
	assert.Equal(t, 1, p.CurrentPage, "PrevPage en la primera página no hace nada")

	p.GoToLastPage()
	assert.Equal(t, 3, p.CurrentPage)

	p.NextPage()
	assert.Equal(t, 3, p.CurrentPage, "NextPage en la última página no hace nada")

	p.GoToFirstPage()
	assert.Equal(t, 1, p.CurrentPage)
}

// Caso 5: Update hace merge parcial y reacota la página al rango resultante.
func TestPagination_UpdateMergeParcial(t *testing.T) {
	p := state.NewPagination()
	p.SetPage(1)

	p.Update(state.PaginationUpdate{TotalPages: intPtr(4), TotalRecords: intPtr(35)})

	assert.Equal(t, 4, p.TotalPages)
	assert.Equal(t, 35, p.TotalRecords)
	assert.Equal(t, 1, p.CurrentPage, "campos ausentes no se tocan")
	assert.Equal(t, state.DefaultLimit, p.RecordsPerPage)
}

// Caso 6: Window recorta un arreglo filtrado en memoria y recalcula totales.
func TestPagination_WindowRecortaYRecalculaTotales(t *testing.T) {
	p := state.NewPagination()
	p.RecordsPerPage = 10
	p.SetPage(2)
	p.TotalPages = 0 // aún sin load

	from, to := p.Window(25)

	assert.Equal(t, 10, from)
	assert.Equal(t, 20, to)
	assert.Equal(t, 25, p.TotalRecords)
	assert.Equal(t, 3, p.TotalPages, "25 registros con límite 10 son 3 páginas")
}

// Caso 6b: si el filtro encoge el resultado, la página vigente se reacota y la
// ventana nunca se sale del arreglo.
func TestPagination_WindowConPaginaFueraDeRango(t *testing.T) {
	p := state.NewPagination()
	p.RecordsPerPage = 10
	p.TotalPages = 5
	p.SetPage(5)

	from, to := p.Window(12)

	assert.Equal(t, 2, p.CurrentPage, "la página se reacota al nuevo total")
	assert.Equal(t, 10, from)
	assert.Equal(t, 12, to)
}

// Caso 6c: resultado filtrado vacío produce una ventana vacía en la página 1.
func TestPagination_WindowConResultadoVacio(t *testing.T) {
	p := state.NewPagination()

	from, to := p.Window(0)

	assert.Equal(t, 0, from)
	assert.Equal(t, 0, to)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 0, p.TotalPages)
}

// Caso 7: Window es idempotente con los mismos datos: dos llamadas seguidas
// devuelven la misma ventana.
func TestPagination_WindowIdempotente(t *testing.T) {
	p := state.NewPagination()
	p.RecordsPerPage = 10
	p.SetPage(2)

	from1, to1 := p.Window(45)
	from2, to2 := p.Window(45)

	assert.Equal(t, from1, from2, "recalcular con los mismos datos no mueve la ventana")
	assert.Equal(t, to1, to2)
	assert.Equal(t, 2, p.CurrentPage)
}
