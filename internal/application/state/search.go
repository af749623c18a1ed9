package state

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// folder de minúsculas Unicode para comparación sin distinción de mayúsculas.
var lowerCaser = cases.Lower(language.Und)

// Search estado de búsqueda y filtros de una pantalla de gestión.
// Cualquier mutación reinicia la paginación enlazada a la página 1:
// cambiar el criterio invalida la posición dentro del resultado anterior.
type Search struct {
	Query   string
	Filters map[string]string

	pagination *Pagination
}

// NewSearch crea el estado de búsqueda enlazado a una paginación.
func NewSearch(p *Pagination) *Search {
	return &Search{Filters: make(map[string]string), pagination: p}
}

// SetQuery fija el texto libre de búsqueda y reinicia la paginación.
func (s *Search) SetQuery(q string) {
	s.Query = q
	s.resetPage()
}

// SetFilter fija un filtro de campo y reinicia la paginación.
// Un valor vacío elimina el filtro.
func (s *Search) SetFilter(key, value string) {
	if value == "" {
		delete(s.Filters, key)
	} else {
		s.Filters[key] = value
	}
	s.resetPage()
}

// ClearFilters elimina todos los filtros y el texto, y reinicia la paginación.
func (s *Search) ClearFilters() {
	s.Query = ""
	s.Filters = make(map[string]string)
	s.resetPage()
}

// Filter devuelve el valor de un filtro ("" si no está presente).
func (s *Search) Filter(key string) string {
	return s.Filters[key]
}

// QueryParams serializa query + filtros como parámetros para el backend
// o como parte de la clave de caché. Claves en orden estable.
func (s *Search) QueryParams() map[string]string {
	params := make(map[string]string, len(s.Filters)+1)
	if s.Query != "" {
		params["q"] = s.Query
	}
	for k, v := range s.Filters {
		params[k] = v
	}
	return params
}

// CacheKeySuffix forma determinista de los parámetros para la clave de caché.
func (s *Search) CacheKeySuffix() string {
	params := s.QueryParams()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
		b.WriteByte('&')
	}
	return b.String()
}

func (s *Search) resetPage() {
	if s.pagination != nil {
		s.pagination.CurrentPage = 1
	}
}

// MatchesQuery evalúa el predicado de texto libre: true si la concatenación
// de los campos contiene la consulta, sin distinguir mayúsculas (case folding
// Unicode, no solo ASCII).
func MatchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	needle := lowerCaser.String(query)
	haystack := lowerCaser.String(strings.Join(fields, " "))
	return strings.Contains(haystack, needle)
}
