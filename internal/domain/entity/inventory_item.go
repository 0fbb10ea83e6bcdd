package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un producto en inventario.
// Quantity se muta únicamente vía workflows (venta: decremento condicional;
// recepción de orden: incremento) o ajuste explícito de un admin.
type InventoryItem struct {
	ID            string
	ProductCode   string // código único del producto
	Name          string
	Description   string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	MinStock      decimal.Decimal // umbral de alerta de stock bajo
	MaxStock      decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el producto está en o por debajo del umbral mínimo.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinStock)
}
