package entity

import "time"

// Investor inversionista que financia órdenes de compra.
type Investor struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
