package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRowDTO fila de la tabla "Inventario de Stock": resumen por variante
// más la clasificación derivada del nivel.
type InventoryRowDTO struct {
	VariantID     string          `json:"variant_id"`
	SKU           string          `json:"sku"`
	VariantName   string          `json:"variant_name"`
	ProductName   string          `json:"product_name"`
	Size          string          `json:"size"`
	Color         string          `json:"color"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	TotalStockIn  decimal.Decimal `json:"total_stock_in"`
	TotalStockOut decimal.Decimal `json:"total_stock_out"`
	StockLevel    string          `json:"stock_level"` // OUT_OF_STOCK, LOW, MEDIUM, HIGH
}

// InventoryStatsDTO widgets de estadísticas sobre el feed SIN filtrar.
type InventoryStatsDTO struct {
	TotalProducts int `json:"total_products"`
	InStock       int `json:"in_stock"`
	LowStock      int `json:"low_stock"`
	OutOfStock    int `json:"out_of_stock"`
}

// InventoryScreenDTO respuesta completa de la pantalla de inventario.
type InventoryScreenDTO struct {
	Rows  []InventoryRowDTO `json:"rows"`
	Stats InventoryStatsDTO `json:"stats"`
	Page  PageDTO           `json:"page"`
}

// TodayMovementsDTO totales de movimientos del día calendario local.
type TodayMovementsDTO struct {
	StockIn  decimal.Decimal `json:"stock_in"`
	StockOut decimal.Decimal `json:"stock_out"`
}

// MovementRowDTO fila del historial de movimientos.
type MovementRowDTO struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	VariantName string          `json:"variant_name"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	ReasonType  string          `json:"reason_type"`
	Reason      string          `json:"reason"`
	OrderID     string          `json:"order_id,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MovementsScreenDTO respuesta de la pantalla de movimientos (paginada por el servidor).
type MovementsScreenDTO struct {
	Rows []MovementRowDTO `json:"rows"`
	Page PageDTO          `json:"page"`
}
