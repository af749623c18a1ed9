// Package prefs persiste preferencias de UI entre reinicios. Hoy solo guarda
// anchos de columna de tablas, con clave el identificador de tabla que
// proporciona el caller.
//
// Los anchos llegan en ráfagas (cada tick del arrastre de una columna es un
// PUT): la memoria se actualiza al instante y la escritura a disco pasa por
// un debouncer, de modo que una ráfaga produce una sola escritura.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tu-usuario/moda-backoffice/internal/application/state"
)

// Store almacén de preferencias respaldado por un archivo JSON.
type Store struct {
	mu       sync.RWMutex
	path     string
	widths   map[string]map[string]int // tableID -> columna -> ancho en px
	flush    *state.Debouncer
	flushErr error
}

// NewStore crea el almacén y carga el archivo si existe. Un archivo corrupto
// se descarta y se parte de cero: las preferencias no son datos críticos.
// flushAfter es la ventana del write-behind; con <= 0 aplica el default.
func NewStore(path string, flushAfter time.Duration) *Store {
	s := &Store{path: path, widths: make(map[string]map[string]int)}
	s.flush = state.NewDebouncer(flushAfter, func(string) { s.persist() })
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var onDisk map[string]map[string]int
	if json.Unmarshal(data, &onDisk) == nil && onDisk != nil {
		s.widths = onDisk
	}
	return s
}

// ColumnWidths devuelve los anchos guardados para una tabla (nil si no hay).
func (s *Store) ColumnWidths(tableID string) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	saved, ok := s.widths[tableID]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(saved))
	for col, w := range saved {
		out[col] = w
	}
	return out
}

// SetColumnWidths guarda los anchos de una tabla en memoria y agenda la
// escritura a disco. Con widths nil la tabla se olvida.
func (s *Store) SetColumnWidths(tableID string, widths map[string]int) {
	s.mu.Lock()
	if widths == nil {
		delete(s.widths, tableID)
	} else {
		copied := make(map[string]int, len(widths))
		for col, w := range widths {
			copied[col] = w
		}
		s.widths[tableID] = copied
	}
	s.mu.Unlock()
	s.flush.Type(tableID)
}

// Close despacha cualquier escritura pendiente y devuelve el último error de
// persistencia. Llamar al apagar la consola.
func (s *Store) Close() error {
	s.flush.Flush()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flushErr
}

// persist escribe el snapshot completo; corre en el goroutine del debouncer.
func (s *Store) persist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.flushErr = err
		return
	}
	data, err := json.MarshalIndent(s.widths, "", "  ")
	if err != nil {
		s.flushErr = err
		return
	}
	s.flushErr = os.WriteFile(s.path, data, 0o600)
}
