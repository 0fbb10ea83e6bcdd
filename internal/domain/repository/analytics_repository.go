package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult resultado crudo del ranking de productos más vendidos.
// Lo produce la DB; el use case lo convierte en DTO.
type TopProductResult struct {
	InventoryItemID string
	ProductCode     string
	Name            string
	UnitsSold       decimal.Decimal
	Revenue         decimal.Decimal
}

// SaleReportRow fila plana de venta para reportes exportables.
type SaleReportRow struct {
	Number        string
	SaleDate      time.Time
	CustomerName  string
	PaymentMethod string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

// ExpenseReportRow fila plana de gasto para reportes exportables.
type ExpenseReportRow struct {
	Category  string
	Amount    decimal.Decimal
	Status    string
	Note      string
	CreatedAt time.Time
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesTotals devuelve el total vendido y la cantidad de ventas en el rango.
	// Usa COALESCE para devolver cero si no hay ventas en el período.
	GetSalesTotals(ctx context.Context, from, to time.Time) (total decimal.Decimal, count int, err error)

	// GetExpenseTotal devuelve el total de gastos APPROVED en el rango.
	GetExpenseTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// GetInventoryValuation devuelve Σ(cantidad × precio de compra) de todo el inventario.
	GetInventoryValuation(ctx context.Context) (decimal.Decimal, error)

	// CountLowStock cuenta productos en o bajo su umbral mínimo.
	CountLowStock(ctx context.Context) (int, error)

	// CountPendingQuotations cuenta cotizaciones aún PENDING.
	CountPendingQuotations(ctx context.Context) (int, error)

	// GetTopProducts devuelve los `limit` productos con más unidades vendidas en el rango.
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)

	// ListSaleRows y ListExpenseRows alimentan el export xlsx del mes.
	ListSaleRows(ctx context.Context, from, to time.Time) ([]SaleReportRow, error)
	ListExpenseRows(ctx context.Context, from, to time.Time) ([]ExpenseReportRow, error)
}
