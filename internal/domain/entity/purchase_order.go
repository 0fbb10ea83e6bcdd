package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder orden de compra a proveedor (PO-nnnn).
// Invariante: si lleva inversiones, la suma de montos debe igualar el total
// de la orden y los porcentajes de utilidad deben sumar 100.
type PurchaseOrder struct {
	ID         string
	Number     string // PO-0003
	VendorName string
	Status     string // PENDING | DISPATCHED | RECEIVED | CANCELLED
	OrderDate  time.Time
	ReceivedAt *time.Time
	Total      decimal.Decimal
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Items      []*PurchaseOrderItem
	Invests    []*Investment
}

// PurchaseOrderItem línea de la orden (producto y costo unitario pactado).
type PurchaseOrderItem struct {
	ID              string
	PurchaseOrderID string
	InventoryItemID string
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
}

// Investment aporte de un inversionista a una orden de compra.
type Investment struct {
	ID              string
	PurchaseOrderID string
	InvestorID      string
	Amount          decimal.Decimal
	ProfitPercent   decimal.Decimal // porcentaje de utilidad pactado
	CreatedAt       time.Time
}
