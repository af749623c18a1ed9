package prefs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/prefs"
)

// Ventana larga: nada llega a disco salvo que el test lo fuerce con Close.
const sinFlush = time.Hour

// Caso 1: los anchos guardados sobreviven a un "reinicio" del almacén.
func TestStore_PersisteEntreReinicios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s := prefs.NewStore(path, sinFlush)
	s.SetColumnWidths("inventario", map[string]int{"sku": 120, "nombre": 260})
	require.NoError(t, s.Close())

	reiniciado := prefs.NewStore(path, sinFlush)
	widths := reiniciado.ColumnWidths("inventario")

	require.NotNil(t, widths)
	assert.Equal(t, 120, widths["sku"])
	assert.Equal(t, 260, widths["nombre"])
}

// Caso 2: una tabla sin preferencias devuelve nil (la UI usa sus defaults).
func TestStore_TablaSinPreferencias(t *testing.T) {
	s := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"), sinFlush)
	assert.Nil(t, s.ColumnWidths("ordenes"))
}

// Caso 3: guardar nil elimina las preferencias de la tabla.
func TestStore_GuardarNilElimina(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := prefs.NewStore(path, sinFlush)
	s.SetColumnWidths("inventario", map[string]int{"sku": 120})

	s.SetColumnWidths("inventario", nil)

	assert.Nil(t, s.ColumnWidths("inventario"))
}

// Caso 4: un archivo corrupto se descarta y se parte de cero, sin error:
// las preferencias no son datos críticos.
func TestStore_ArchivoCorruptoParteDeCero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{no-es-json"), 0o600))

	s := prefs.NewStore(path, sinFlush)

	assert.Nil(t, s.ColumnWidths("inventario"))
	s.SetColumnWidths("inventario", map[string]int{"sku": 100})
	require.NoError(t, s.Close(), "el almacén sigue siendo usable tras descartar el archivo corrupto")
	assert.Equal(t, 100, prefs.NewStore(path, sinFlush).ColumnWidths("inventario")["sku"])
}

// Caso 5: el mapa devuelto es una copia; mutarlo no toca el estado interno.
func TestStore_DevuelveCopia(t *testing.T) {
	s := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"), sinFlush)
	s.SetColumnWidths("inventario", map[string]int{"sku": 120})

	out := s.ColumnWidths("inventario")
	out["sku"] = 999

	assert.Equal(t, 120, s.ColumnWidths("inventario")["sku"])
}

// Caso 6: una ráfaga de escrituras (arrastre de columna) coalesce en un solo
// flush con el valor final; la memoria se lee al instante.
func TestStore_RafagaCoalesceEnUnFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := prefs.NewStore(path, 100*time.Millisecond)

	for _, w := range []int{100, 140, 180, 220} {
		s.SetColumnWidths("inventario", map[string]int{"sku": w})
	}
	assert.Equal(t, 220, s.ColumnWidths("inventario")["sku"], "la memoria refleja la última tecla")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "en plena ráfaga aún no se escribe a disco")

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		if err != nil {
			return false
		}
		var onDisk map[string]map[string]int
		return json.Unmarshal(data, &onDisk) == nil && onDisk["inventario"]["sku"] == 220
	}, 2*time.Second, 10*time.Millisecond, "tras asentarse la ráfaga queda el valor final en disco")
}

// Caso 7: Close despacha lo pendiente aunque la ventana no haya vencido.
func TestStore_CloseDespachaPendiente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := prefs.NewStore(path, sinFlush)
	s.SetColumnWidths("movimientos", map[string]int{"fecha": 90})

	require.NoError(t, s.Close())

	assert.Equal(t, 90, prefs.NewStore(path, sinFlush).ColumnWidths("movimientos")["fecha"])
}
