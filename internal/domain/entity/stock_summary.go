package entity

import "github.com/shopspring/decimal"

// StockSummary snapshot de stock actual por variante, materializado por el
// servidor a partir de los movimientos. La consola lo trata como lectura pura:
// se vuelve a pedir tras cada mutación, nunca se actualiza incrementalmente.
type StockSummary struct {
	VariantID     string
	CurrentStock  decimal.Decimal
	TotalStockIn  decimal.Decimal
	TotalStockOut decimal.Decimal
	Variant       *Variant
}
