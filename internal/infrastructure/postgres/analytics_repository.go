package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y los reportes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesTotals devuelve el total vendido y la cantidad de ventas en el rango.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	const query = `
	SELECT
	    COALESCE(SUM(total), 0) AS total,
	    COUNT(*)                AS sales
	FROM retail_sales
	WHERE sale_date >= $1 AND sale_date < $2`

	var total decimal.Decimal
	var count int
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("analytics.GetSalesTotals: %w", err)
	}
	return total, count, nil
}

// GetExpenseTotal devuelve el total de gastos APPROVED en el rango.
func (r *AnalyticsRepo) GetExpenseTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM expenses
	WHERE status = 'APPROVED' AND created_at >= $1 AND created_at < $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetExpenseTotal: %w", err)
	}
	return total, nil
}

// GetInventoryValuation devuelve Σ(cantidad × precio de compra) de todo el inventario.
func (r *AnalyticsRepo) GetInventoryValuation(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(quantity * purchase_price), 0) FROM inventory_items`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetInventoryValuation: %w", err)
	}
	return total, nil
}

// CountLowStock cuenta productos en o bajo su umbral mínimo.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM inventory_items WHERE quantity <= min_stock`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountLowStock: %w", err)
	}
	return count, nil
}

// CountPendingQuotations cuenta cotizaciones aún PENDING.
func (r *AnalyticsRepo) CountPendingQuotations(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM quotations WHERE status = 'PENDING'`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountPendingQuotations: %w", err)
	}
	return count, nil
}

// GetTopProducts devuelve los `limit` productos con más unidades vendidas en el rango.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    ii.id                            AS inventory_item_id,
	    ii.product_code,
	    ii.name,
	    SUM(d.quantity)                  AS units_sold,
	    SUM(d.quantity * d.unit_price)   AS revenue
	FROM retail_sale_items d
	JOIN retail_sales s    ON s.id  = d.retail_sale_id
	JOIN inventory_items ii ON ii.id = d.inventory_item_id
	WHERE s.sale_date >= $1 AND s.sale_date < $2
	GROUP BY ii.id, ii.product_code, ii.name
	ORDER BY units_sold DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(
			&row.InventoryItemID,
			&row.ProductCode,
			&row.Name,
			&row.UnitsSold,
			&row.Revenue,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts rows: %w", err)
	}
	if results == nil {
		results = []repository.TopProductResult{}
	}
	return results, nil
}

// ListSaleRows devuelve las ventas del rango como filas planas para el reporte xlsx.
func (r *AnalyticsRepo) ListSaleRows(ctx context.Context, from, to time.Time) ([]repository.SaleReportRow, error) {
	const query = `
	SELECT number, sale_date, customer_name, payment_method, subtotal, discount, tax, total
	FROM retail_sales
	WHERE sale_date >= $1 AND sale_date < $2
	ORDER BY sale_date ASC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListSaleRows: %w", err)
	}
	defer rows.Close()

	var results []repository.SaleReportRow
	for rows.Next() {
		var row repository.SaleReportRow
		if err := rows.Scan(
			&row.Number,
			&row.SaleDate,
			&row.CustomerName,
			&row.PaymentMethod,
			&row.Subtotal,
			&row.Discount,
			&row.Tax,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("analytics.ListSaleRows scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListExpenseRows devuelve los gastos del rango como filas planas para el reporte xlsx.
func (r *AnalyticsRepo) ListExpenseRows(ctx context.Context, from, to time.Time) ([]repository.ExpenseReportRow, error) {
	const query = `
	SELECT category, amount, status, note, created_at
	FROM expenses
	WHERE created_at >= $1 AND created_at < $2
	ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListExpenseRows: %w", err)
	}
	defer rows.Close()

	var results []repository.ExpenseReportRow
	for rows.Next() {
		var row repository.ExpenseReportRow
		if err := rows.Scan(
			&row.Category,
			&row.Amount,
			&row.Status,
			&row.Note,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("analytics.ListExpenseRows scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
