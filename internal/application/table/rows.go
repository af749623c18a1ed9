package table

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/domain/stock"
)

// Niveles de fila en la tabla árbol producto → variante.
const (
	LevelProduct = 0
	LevelVariant = 1
)

// Row view-model de una fila de la grilla de productos. Las filas de variante
// llevan Level=1 y ParentID apuntando al producto.
type Row struct {
	ID           string          `json:"id"`
	ParentID     string          `json:"parent_id,omitempty"`
	Level        int             `json:"level"`
	Expanded     bool            `json:"expanded,omitempty"` // solo filas de producto
	Name         string          `json:"name"`
	SKU          string          `json:"sku,omitempty"`
	Category     string          `json:"category,omitempty"`
	Size         string          `json:"size,omitempty"`
	Color        string          `json:"color,omitempty"`
	Gender       string          `json:"gender,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	VariantCount int             `json:"variant_count,omitempty"`
	StockBadge   string          `json:"stock_badge,omitempty"`
}

// FlattenProducts aplana el árbol producto → variante: cada producto emite su
// fila y, si está expandido, una fila por variante inmediatamente después.
func FlattenProducts(products []entity.Product, exp *Expansion) []Row {
	rows := make([]Row, 0, len(products))
	for _, p := range products {
		expanded := exp != nil && exp.IsExpanded(p.ID)
		rows = append(rows, Row{
			ID:           p.ID,
			Level:        LevelProduct,
			Expanded:     expanded,
			Name:         p.Name,
			Category:     p.Category,
			Price:        p.BasePrice,
			Quantity:     productQuantity(p),
			VariantCount: len(p.Variants),
		})
		if !expanded {
			continue
		}
		for _, v := range p.Variants {
			rows = append(rows, Row{
				ID:         v.ID,
				ParentID:   p.ID,
				Level:      LevelVariant,
				Name:       v.Name,
				SKU:        v.SKU,
				Size:       v.Size,
				Color:      v.Color,
				Gender:     v.Gender,
				Price:      v.Price,
				Quantity:   v.Quantity,
				StockBadge: string(stock.Classify(v.Quantity)),
			})
		}
	}
	return rows
}

// productQuantity stock informativo del producto: suma de sus variantes.
func productQuantity(p entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, v := range p.Variants {
		total = total.Add(v.Quantity)
	}
	return total
}
