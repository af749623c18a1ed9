// Package state contiene el estado por pantalla de la consola: paginación,
// búsqueda/filtros y debounce. Vive solo en memoria; no se persiste entre
// recargas.
package state

// Valores por defecto de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination estado de paginación de un listado.
// Invariante: CurrentPage ∈ [1, max(TotalPages, 1)].
// TotalPages/TotalRecords los reporta el servidor (o el recorte en memoria
// de la pantalla de inventario); el cliente nunca los inventa.
type Pagination struct {
	CurrentPage    int
	RecordsPerPage int
	TotalPages     int
	TotalRecords   int
}

// PaginationUpdate merge parcial de totales reportados por el servidor.
// Es la única vía por la que TotalPages/TotalRecords entran al estado.
type PaginationUpdate struct {
	CurrentPage    *int
	RecordsPerPage *int
	TotalPages     *int
	TotalRecords   *int
}

// NewPagination crea el estado con los valores por defecto.
func NewPagination() *Pagination {
	return &Pagination{CurrentPage: DefaultPage, RecordsPerPage: DefaultLimit}
}

// maxPage página máxima navegable; al menos 1 aunque no haya registros.
func (p *Pagination) maxPage() int {
	if p.TotalPages < 1 {
		return 1
	}
	return p.TotalPages
}

// SetPage fija la página actual, acotada a [1, maxPage]. Con totales aún
// desconocidos (TotalPages == 0) no se acota por arriba: el primer load
// del servidor reportará los totales y Update reacotará si hace falta.
func (p *Pagination) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if p.TotalPages > 0 && n > p.TotalPages {
		n = p.TotalPages
	}
	p.CurrentPage = n
}

// SetLimit cambia el tamaño de página y SIEMPRE vuelve a la página 1:
// conservar la página podría dejar a la vista una página fuera de rango.
func (p *Pagination) SetLimit(n int) {
	if n < 1 {
		n = DefaultLimit
	}
	if n > MaxLimit {
		n = MaxLimit
	}
	p.RecordsPerPage = n
	p.CurrentPage = 1
}

// CanGoNext indica si existe una página siguiente.
func (p *Pagination) CanGoNext() bool {
	return p.CurrentPage < p.TotalPages
}

// CanGoPrev indica si existe una página anterior.
func (p *Pagination) CanGoPrev() bool {
	return p.CurrentPage > 1
}

// NextPage avanza una página; en el borde es un no-op, no un error.
func (p *Pagination) NextPage() {
	if p.CanGoNext() {
		p.CurrentPage++
	}
}

// PrevPage retrocede una página; en el borde es un no-op.
func (p *Pagination) PrevPage() {
	if p.CanGoPrev() {
		p.CurrentPage--
	}
}

// GoToFirstPage salta a la primera página.
func (p *Pagination) GoToFirstPage() {
	p.CurrentPage = 1
}

// GoToLastPage salta a la última página conocida.
func (p *Pagination) GoToLastPage() {
	p.CurrentPage = p.maxPage()
}

// Update aplica un merge superficial de los campos presentes y reacota
// CurrentPage al rango válido resultante.
func (p *Pagination) Update(u PaginationUpdate) {
	if u.RecordsPerPage != nil {
		p.RecordsPerPage = *u.RecordsPerPage
	}
	if u.TotalPages != nil {
		p.TotalPages = *u.TotalPages
	}
	if u.TotalRecords != nil {
		p.TotalRecords = *u.TotalRecords
	}
	if u.CurrentPage != nil {
		p.CurrentPage = *u.CurrentPage
	}
	if p.CurrentPage > p.maxPage() {
		p.CurrentPage = p.maxPage()
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
}

// Offset índice del primer registro de la página actual (base 0).
func (p *Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.RecordsPerPage
}

// Window devuelve [from, to) para recortar un arreglo filtrado en memoria de
// longitud total. Recalcula TotalPages/TotalRecords a partir de esa longitud:
// en la pantalla de inventario la paginación es una ventana sobre el arreglo
// filtrado, no un round-trip al servidor.
func (p *Pagination) Window(totalFiltered int) (from, to int) {
	p.TotalRecords = totalFiltered
	p.TotalPages = (totalFiltered + p.RecordsPerPage - 1) / p.RecordsPerPage
	if p.CurrentPage > p.maxPage() {
		p.CurrentPage = p.maxPage()
	}
	from = p.Offset()
	if from > totalFiltered {
		from = totalFiltered
	}
	to = from + p.RecordsPerPage
	if to > totalFiltered {
		to = totalFiltered
	}
	return from, to
}
