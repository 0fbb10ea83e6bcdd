package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest body para POST /api/inventory.
type CreateInventoryItemRequest struct {
	ProductCode   string          `json:"product_code" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	MinStock      decimal.Decimal `json:"min_stock"`
	MaxStock      decimal.Decimal `json:"max_stock"`
}

// UpdateInventoryItemRequest body para PUT /api/inventory/:id.
// No permite mutar Quantity: eso es de los workflows o del ajuste explícito.
type UpdateInventoryItemRequest struct {
	Name          string          `json:"name,omitempty"`
	Description   string          `json:"description,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	MinStock      decimal.Decimal `json:"min_stock"`
	MaxStock      decimal.Decimal `json:"max_stock"`
}

// AdjustStockRequest body para POST /api/inventory/:id/adjust (solo admin).
// Delta positivo suma, negativo resta (condicional al stock disponible).
type AdjustStockRequest struct {
	Delta  decimal.Decimal `json:"delta" validate:"required"`
	Reason string          `json:"reason,omitempty"`
}

// ListInventoryRequest query params del listado.
type ListInventoryRequest struct {
	PageRequest
	Search  string `query:"search"`
	LowOnly bool   `query:"low_only"`
}

// InventoryItemResponse producto en respuestas.
type InventoryItemResponse struct {
	ID            string          `json:"id"`
	ProductCode   string          `json:"product_code"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	MinStock      decimal.Decimal `json:"min_stock"`
	MaxStock      decimal.Decimal `json:"max_stock"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
