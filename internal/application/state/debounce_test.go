package state_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/moda-backoffice/internal/application/state"
)

// recorder acumula los despachos del debouncer de forma segura.
type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// Caso 1: teclas rápidas dentro de la ventana despachan solo el valor final.
func TestDebouncer_UltimaConsultaGana(t *testing.T) {
	rec := &recorder{}
	d := state.NewDebouncer(30*time.Millisecond, rec.record)
	defer d.Stop()

	d.Type("c")
	d.Type("ca")
	d.Type("cam")
	d.Type("cami")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond, "debe haber exactamente un despacho")
	assert.Equal(t, []string{"cami"}, rec.snapshot(), "solo la última tecla llega al despacho")
}

// Caso 2: Flush despacha el pendiente sin esperar la ventana.
func TestDebouncer_FlushDespachaInmediato(t *testing.T) {
	rec := &recorder{}
	d := state.NewDebouncer(time.Hour, rec.record)
	defer d.Stop()

	d.Type("vestido")
	d.Flush()

	assert.Equal(t, []string{"vestido"}, rec.snapshot(), "Flush no espera la ventana")
}

// Caso 2b: Flush sin pendiente no despacha nada.
func TestDebouncer_FlushSinPendienteEsNoOp(t *testing.T) {
	rec := &recorder{}
	d := state.NewDebouncer(10*time.Millisecond, rec.record)
	defer d.Stop()

	d.Flush()

	assert.Empty(t, rec.snapshot())
}

// Caso 3: Stop cancela el pendiente; salir de la pantalla no dispara búsquedas.
func TestDebouncer_StopCancelaPendiente(t *testing.T) {
	rec := &recorder{}
	d := state.NewDebouncer(20*time.Millisecond, rec.record)

	d.Type("polo")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "tras Stop no debe haber despachos")
}
