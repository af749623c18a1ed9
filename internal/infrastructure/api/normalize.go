package api

import (
	"encoding/json"
	"fmt"
)

// PageMeta metadatos de paginación reportados por el servidor. El servidor,
// no el cliente, es autoritativo para los totales.
type PageMeta struct {
	CurrentPage    int `json:"current_page"`
	RecordsPerPage int `json:"records_per_page"`
	TotalPages     int `json:"total_pages"`
	TotalRecords   int `json:"total_records"`
}

// Page respuesta de listado ya normalizada. Meta es nil cuando el endpoint
// devolvió un arreglo plano (feeds sin paginar, ej. el resumen de bodega).
type Page[T any] struct {
	Items []T
	Meta  *PageMeta
}

// envelope forma {data: [...], pagination: {...}} del backend.
type envelope[T any] struct {
	Data       []T       `json:"data"`
	Pagination *PageMeta `json:"pagination"`
}

// decodePage normaliza las dos formas de respuesta del backend
// ({data:[...], pagination:{...}} o un arreglo plano) a una Page tipada.
// Es el único punto que distingue formas; el resto del código consume Page.
func decodePage[T any](raw []byte) (Page[T], error) {
	trimmed := firstByte(raw)
	switch trimmed {
	case '[':
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return Page[T]{}, fmt.Errorf("decodificar arreglo plano: %w", err)
		}
		return Page[T]{Items: items}, nil
	case '{':
		var env envelope[T]
		if err := json.Unmarshal(raw, &env); err != nil {
			return Page[T]{}, fmt.Errorf("decodificar envelope: %w", err)
		}
		if env.Data == nil {
			env.Data = []T{}
		}
		return Page[T]{Items: env.Data, Meta: env.Pagination}, nil
	default:
		return Page[T]{}, fmt.Errorf("respuesta de listado con forma inesperada")
	}
}

// firstByte primer byte significativo del JSON (0 si el cuerpo está vacío).
func firstByte(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
