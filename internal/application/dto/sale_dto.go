package dto

import "github.com/shopspring/decimal"

// RetailSaleItemRequest línea vendida (producto de inventario, cantidad, precio).
type RetailSaleItemRequest struct {
	InventoryItemID string          `json:"inventory_id" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// CreateRetailSaleRequest body para POST /api/retail-sales.
type CreateRetailSaleRequest struct {
	Items         []RetailSaleItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string                  `json:"payment_method" validate:"required,oneof=CASH CARD TRANSFER"`
	Discount      decimal.Decimal         `json:"discount"`
	Tax           decimal.Decimal         `json:"tax"`
	CustomerName  string                  `json:"customer_name,omitempty"`
}

// ListRetailSalesRequest query params del listado.
type ListRetailSalesRequest struct {
	PageRequest
	PaymentMethod string `query:"payment_method" validate:"omitempty,oneof=CASH CARD TRANSFER"`
	From          string `query:"from"`
	To            string `query:"to"`
}

// RetailSaleItemResponse línea en la respuesta.
type RetailSaleItemResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventory_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// RetailSaleResponse venta con líneas y totales.
type RetailSaleResponse struct {
	ID            string                   `json:"id"`
	Number        string                   `json:"number"` // RS-0051
	SaleDate      string                   `json:"sale_date"`
	CustomerName  string                   `json:"customer_name,omitempty"`
	PaymentMethod string                   `json:"payment_method"`
	Subtotal      decimal.Decimal          `json:"subtotal"`
	Discount      decimal.Decimal          `json:"discount"`
	Tax           decimal.Decimal          `json:"tax"`
	Total         decimal.Decimal          `json:"total"`
	Items         []RetailSaleItemResponse `json:"items"`
}
