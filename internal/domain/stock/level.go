// Package stock contiene la clasificación de niveles de stock y las
// estadísticas de inventario. Funciones puras, sin I/O: la aritmética
// autoritativa de stock vive en el servidor.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
)

// Level nivel de stock derivado de current_stock. No se almacena.
type Level string

// Niveles de stock.
const (
	LevelOutOfStock Level = "OUT_OF_STOCK"
	LevelLow        Level = "LOW"
	LevelMedium     Level = "MEDIUM"
	LevelHigh       Level = "HIGH"
)

// Umbrales canónicos de clasificación. Única tabla en todo el código:
// las estadísticas del tablero usan exactamente estos mismos cortes.
var (
	lowThreshold  = decimal.NewFromInt(10) // [10, 50) = MEDIUM; (0, 10) = LOW
	highThreshold = decimal.NewFromInt(50) // [50, ∞) = HIGH
)

// Classify clasifica un stock actual en su nivel.
// Bordes: Classify(0) = OUT_OF_STOCK, Classify(10) = MEDIUM, Classify(50) = HIGH.
func Classify(currentStock decimal.Decimal) Level {
	switch {
	case currentStock.LessThanOrEqual(decimal.Zero):
		return LevelOutOfStock
	case currentStock.LessThan(lowThreshold):
		return LevelLow
	case currentStock.LessThan(highThreshold):
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Valid indica si s corresponde a un nivel conocido (para filtros de pantalla).
func Valid(s string) bool {
	switch Level(s) {
	case LevelOutOfStock, LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// Stats estadísticas agregadas del feed de resumen SIN filtrar.
// InStock cuenta MEDIUM ∪ HIGH (stock >= 10); LowStock cuenta LOW;
// OutOfStock cuenta stock == 0. Derivan de la misma tabla de umbrales
// que Classify, de modo que los widgets y los badges siempre coinciden.
type Stats struct {
	TotalProducts int
	InStock       int
	LowStock      int
	OutOfStock    int
}

// ComputeStats recorre el feed completo de resúmenes y cuenta por nivel.
func ComputeStats(summaries []entity.StockSummary) Stats {
	st := Stats{TotalProducts: len(summaries)}
	for _, s := range summaries {
		switch Classify(s.CurrentStock) {
		case LevelOutOfStock:
			st.OutOfStock++
		case LevelLow:
			st.LowStock++
		default:
			st.InStock++
		}
	}
	return st
}
