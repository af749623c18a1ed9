// Package table convierte registros de dominio en view-models de fila para
// las grillas de la consola. No toca la capa de datos: recibe entidades ya
// cargadas y emite filas renderizables.
package table

// Expansion conjunto de productos expandidos en la tabla árbol. Vive fuera de
// los datos de fila: alternar una fila no requiere volver a pedir la página.
type Expansion struct {
	expanded map[string]bool
}

// NewExpansion crea el conjunto vacío (todo colapsado).
func NewExpansion() *Expansion {
	return &Expansion{expanded: make(map[string]bool)}
}

// Toggle alterna la pertenencia de un producto al conjunto.
func (e *Expansion) Toggle(id string) {
	if e.expanded[id] {
		delete(e.expanded, id)
	} else {
		e.expanded[id] = true
	}
}

// IsExpanded indica si un producto está expandido.
func (e *Expansion) IsExpanded(id string) bool {
	return e.expanded[id]
}

// ExpandAll deja expandidos exactamente los ids dados: lo expandido en una
// página anterior no sobrevive. Limitación conocida: solo alcanza la página
// de productos actualmente cargada, no el catálogo completo.
func (e *Expansion) ExpandAll(loadedIDs []string) {
	next := make(map[string]bool, len(loadedIDs))
	for _, id := range loadedIDs {
		next[id] = true
	}
	e.expanded = next
}

// CollapseAll vacía el conjunto.
func (e *Expansion) CollapseAll() {
	e.expanded = make(map[string]bool)
}

// Count cantidad de productos expandidos.
func (e *Expansion) Count() int {
	return len(e.expanded)
}
