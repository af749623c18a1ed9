package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRowDTO fila del listado de órdenes.
type OrderRowDTO struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	ItemCount    int             `json:"item_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrdersScreenDTO respuesta de la pantalla de órdenes.
type OrdersScreenDTO struct {
	Rows []OrderRowDTO `json:"rows"`
	Page PageDTO       `json:"page"`
}

// CustomerRowDTO fila del listado de clientes.
type CustomerRowDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomersScreenDTO respuesta de la pantalla de clientes.
type CustomersScreenDTO struct {
	Rows []CustomerRowDTO `json:"rows"`
	Page PageDTO          `json:"page"`
}

// DashboardDTO respuesta del tablero: resumen de negocio, stock y movimientos del día.
type DashboardDTO struct {
	TotalOrders    int               `json:"total_orders"`
	PendingOrders  int               `json:"pending_orders"`
	TotalCustomers int               `json:"total_customers"`
	TodayRevenue   decimal.Decimal   `json:"today_revenue"`
	Stock          InventoryStatsDTO `json:"stock"`
	TodayMovements TodayMovementsDTO `json:"today_movements"`
}
