package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en ventas al detal.
const (
	PaymentCash     = "CASH"
	PaymentCard     = "CARD"
	PaymentTransfer = "TRANSFER"
)

// RetailSale venta al detal numerada (RS-nnnn).
// Total = Subtotal - Discount + Tax, exacto a precisión decimal.
type RetailSale struct {
	ID            string
	Number        string // RS-0051
	SaleDate      time.Time
	CustomerName  string
	PaymentMethod string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	CreatedBy     string
	CreatedAt     time.Time
	Items         []*RetailSaleItem
}

// RetailSaleItem línea vendida; cada una descuenta inventario.
type RetailSaleItem struct {
	ID              string
	RetailSaleID    string
	InventoryItemID string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
}
