package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrSessionExpired    = errors.New("sesión expirada")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrUpstream          = errors.New("error del backend remoto")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError error de regla de negocio con campos estructurados:
// el backend (o la validación local) rechaza una salida mayor al stock actual.
// errors.Is(err, ErrInsufficientStock) == true.
type InsufficientStockError struct {
	VariantID    string
	CurrentStock decimal.Decimal
	Requested    decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s",
		e.CurrentStock.String(), e.Requested.String())
}

// Is permite comparar contra el sentinel ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
