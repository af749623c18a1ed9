package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Géneros de prenda según el catálogo.
const (
	GenderMen    = "MEN"
	GenderWomen  = "WOMEN"
	GenderUnisex = "UNISEX"
	GenderKids   = "KIDS"
)

// Variant representa un SKU concreto de un producto (combinación talla/color/género).
// Pertenece al catálogo de productos; el libro de inventario la referencia pero nunca la muta.
type Variant struct {
	ID          string
	ProductID   string
	SKU         string // único por empresa
	Name        string
	Size        string // XS, S, M, L, XL, ...
	Color       string
	Gender      string          // MEN, WOMEN, UNISEX, KIDS
	Unit        string          // unidad de medida (pcs, par, set)
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo unitario
	Quantity    decimal.Decimal // stock reportado por el catálogo (informativo)
	FileKey     string          // clave de la imagen en el almacén de archivos
	ProductName string          // desnormalizado para búsqueda y tablas
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
