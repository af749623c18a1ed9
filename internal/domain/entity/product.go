package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con sus variantes (talla/color/género).
// El precio y costo por SKU viven en cada Variant; aquí van los datos comunes.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	BasePrice   decimal.Decimal
	FileKey     string
	Variants    []Variant
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
