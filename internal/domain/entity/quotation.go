package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation representa una cotización numerada (QT-nnnn).
// Inmutable una vez ACCEPTED, salvo el vínculo con la orden de compra resultante.
type Quotation struct {
	ID           string
	Number       string // QT-0007
	CustomerName string
	Status       string // PENDING | ACCEPTED | REJECTED | EXPIRED
	ValidUntil   time.Time
	Subtotal     decimal.Decimal
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []*QuotationItem
}

// QuotationItem línea de cotización.
type QuotationItem struct {
	ID          string
	QuotationID string
	ProductID   string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// BuyerPurchaseOrder orden de compra del comprador, creada solo por el
// workflow de aceptación de cotización (vínculo 1:1 con la cotización).
type BuyerPurchaseOrder struct {
	ID          string
	Number      string // BPO-0012
	QuotationID string
	PODate      time.Time
	PDFURL      string
	ExternalURL string
	CreatedAt   time.Time
}
