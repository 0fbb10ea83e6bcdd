package dto

import "github.com/shopspring/decimal"

// PurchaseOrderItemRequest línea de la orden de compra a proveedor.
type PurchaseOrderItemRequest struct {
	InventoryItemID string          `json:"inventory_item_id" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
}

// InvestmentRequest aporte de un inversionista a la orden.
type InvestmentRequest struct {
	InvestorID    string          `json:"investor_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
// Si lleva inversiones: Σ amount == total de la orden y Σ profit_percent == 100.
type CreatePurchaseOrderRequest struct {
	VendorName  string                     `json:"vendor_name" validate:"required"`
	OrderDate   string                     `json:"order_date,omitempty"` // YYYY-MM-DD; por defecto hoy
	Items       []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Investments []InvestmentRequest        `json:"investments,omitempty" validate:"omitempty,dive"`
}

// UpdatePurchaseOrderStatusRequest body para PATCH /api/purchase-orders/:id/status.
type UpdatePurchaseOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DISPATCHED CANCELLED"`
}

// ListPurchaseOrdersRequest query params del listado.
type ListPurchaseOrdersRequest struct {
	PageRequest
	Status string `query:"status" validate:"omitempty,oneof=PENDING DISPATCHED RECEIVED CANCELLED"`
	Vendor string `query:"vendor"`
	From   string `query:"from"`
	To     string `query:"to"`
}

// PurchaseOrderItemResponse línea en la respuesta.
type PurchaseOrderItemResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventory_item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
}

// InvestmentResponse inversión en la respuesta.
type InvestmentResponse struct {
	ID            string          `json:"id"`
	InvestorID    string          `json:"investor_id"`
	Amount        decimal.Decimal `json:"amount"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

// PurchaseOrderResponse orden con líneas e inversiones.
type PurchaseOrderResponse struct {
	ID          string                      `json:"id"`
	Number      string                      `json:"number"` // PO-0003
	VendorName  string                      `json:"vendor_name"`
	Status      string                      `json:"status"`
	OrderDate   string                      `json:"order_date"`
	ReceivedAt  string                      `json:"received_at,omitempty"`
	Total       decimal.Decimal             `json:"total"`
	Items       []PurchaseOrderItemResponse `json:"items"`
	Investments []InvestmentResponse        `json:"investments,omitempty"`
}
