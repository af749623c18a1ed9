package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/domain"
)

// Códigos de error de negocio reconocidos del backend.
const (
	codeInsufficientStock = "INSUFFICIENT_STOCK"
	codeDuplicate         = "DUPLICATE"
	codeNotFound          = "NOT_FOUND"
	codeValidation        = "VALIDATION"
)

// APIError error crudo del backend cuando no mapea a un error de dominio.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend %d [%s]: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

// errorBody forma del cuerpo de error del backend. Los errores de regla de
// negocio llevan campos estructurados en details (ej. stock insuficiente).
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details struct {
		VariantID    string          `json:"variant_id"`
		CurrentStock decimal.Decimal `json:"current_stock"`
		Requested    decimal.Decimal `json:"requested"`
	} `json:"details"`
}

// decodeError traduce un cuerpo de error HTTP a un error de dominio cuando el
// código es conocido; de lo contrario devuelve el APIError crudo. Nunca
// devuelve nil para status >= 400.
func decodeError(status int, raw []byte) error {
	var body errorBody
	_ = json.Unmarshal(raw, &body) // cuerpo no-JSON: se reporta el status solo

	switch {
	case status == http.StatusUnauthorized:
		return domain.ErrSessionExpired
	case body.Code == codeInsufficientStock:
		return &domain.InsufficientStockError{
			VariantID:    body.Details.VariantID,
			CurrentStock: body.Details.CurrentStock,
			Requested:    body.Details.Requested,
		}
	case body.Code == codeNotFound || status == http.StatusNotFound:
		return domain.ErrNotFound
	case body.Code == codeDuplicate || status == http.StatusConflict:
		return domain.ErrDuplicate
	case body.Code == codeValidation || status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, body.Message)
	default:
		return &APIError{Status: status, Code: body.Code, Message: body.Message}
	}
}
