package dto

import (
	"github.com/shopspring/decimal"
)

// QuotationItemRequest línea de cotización (producto, cantidad, precio unitario).
type QuotationItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateQuotationRequest body para POST /api/quotations.
type CreateQuotationRequest struct {
	CustomerName string                 `json:"customer_name" validate:"required"`
	ValidUntil   string                 `json:"valid_until" validate:"required"` // YYYY-MM-DD
	Items        []QuotationItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateQuotationStatusRequest body para PATCH /api/quotations/:id/status.
type UpdateQuotationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED EXPIRED"`
}

// AcceptQuotationRequest body para POST /api/quotations/:id/accept.
type AcceptQuotationRequest struct {
	PODate      string `json:"po_date,omitempty"` // YYYY-MM-DD; por defecto hoy
	PDFURL      string `json:"pdf_url,omitempty" validate:"omitempty,url"`
	ExternalURL string `json:"external_url,omitempty" validate:"omitempty,url"`
}

// ListQuotationsRequest query params del listado.
type ListQuotationsRequest struct {
	PageRequest
	Status   string `query:"status" validate:"omitempty,oneof=PENDING ACCEPTED REJECTED EXPIRED"`
	Customer string `query:"customer"`
	From     string `query:"from"` // YYYY-MM-DD
	To       string `query:"to"`
}

// QuotationItemResponse línea en la respuesta.
type QuotationItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// BuyerPOResponse orden de compra del comprador vinculada a la cotización.
type BuyerPOResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"` // BPO-0012
	QuotationID string `json:"quotation_id"`
	PODate      string `json:"po_date"`
	PDFURL      string `json:"pdf_url,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

// QuotationResponse cotización con líneas y, si existe, su BPO.
type QuotationResponse struct {
	ID           string                  `json:"id"`
	Number       string                  `json:"number"` // QT-0007
	CustomerName string                  `json:"customer_name"`
	Status       string                  `json:"status"`
	ValidUntil   string                  `json:"valid_until"`
	Subtotal     decimal.Decimal         `json:"subtotal"`
	Items        []QuotationItemResponse `json:"items"`
	BuyerPO      *BuyerPOResponse        `json:"buyer_po,omitempty"`
	CreatedAt    string                  `json:"created_at"`
}

// AcceptQuotationResponse respuesta de POST /api/quotations/:id/accept.
type AcceptQuotationResponse struct {
	Quotation QuotationResponse `json:"quotation"`
	BuyerPO   BuyerPOResponse   `json:"buyer_po"`
}
