package entity

import "time"

// Customer representa un cliente del negocio.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
