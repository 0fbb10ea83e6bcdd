package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.RetailSaleRepository = (*RetailSaleRepo)(nil)

// RetailSaleRepo implementación del puerto RetailSaleRepository sobre PostgreSQL (usable con pool o tx).
type RetailSaleRepo struct {
	q Querier
}

// NewRetailSaleRepository construye el adaptador de ventas al detal. Pasar pool o tx (Querier).
func NewRetailSaleRepository(q Querier) *RetailSaleRepo {
	return &RetailSaleRepo{q: q}
}

// Create persiste la cabecera de la venta. El número lleva UNIQUE:
// una colisión de consecutivo se reporta como ErrConflict.
func (r *RetailSaleRepo) Create(sale *entity.RetailSale) error {
	query := `
		INSERT INTO retail_sales (id, number, sale_date, customer_name, payment_method, subtotal, discount, tax, total, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Number, sale.SaleDate, sale.CustomerName, sale.PaymentMethod,
		sale.Subtotal, sale.Discount, sale.Tax, sale.Total, sale.CreatedBy, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert retail sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea vendida.
func (r *RetailSaleRepo) CreateItem(item *entity.RetailSaleItem) error {
	query := `
		INSERT INTO retail_sale_items (id, retail_sale_id, inventory_item_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.RetailSaleID, item.InventoryItemID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert retail sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *RetailSaleRepo) GetByID(id string) (*entity.RetailSale, error) {
	query := `
		SELECT id, number, sale_date, customer_name, payment_method, subtotal, discount, tax, total, created_by, created_at
		FROM retail_sales WHERE id = $1`
	var s entity.RetailSale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Number, &s.SaleDate, &s.CustomerName, &s.PaymentMethod,
		&s.Subtotal, &s.Discount, &s.Tax, &s.Total, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get retail sale: %w", err)
	}
	return &s, nil
}

// GetItems obtiene las líneas de una venta.
func (r *RetailSaleRepo) GetItems(saleID string) ([]*entity.RetailSaleItem, error) {
	query := `
		SELECT id, retail_sale_id, inventory_item_id, quantity, unit_price
		FROM retail_sale_items WHERE retail_sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list retail sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.RetailSaleItem
	for rows.Next() {
		var it entity.RetailSaleItem
		if err := rows.Scan(&it.ID, &it.RetailSaleID, &it.InventoryItemID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan retail sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List lista ventas con filtros tipados y paginación.
func (r *RetailSaleRepo) List(filter repository.RetailSaleFilter, limit, offset int) ([]*entity.RetailSale, error) {
	query := `
		SELECT id, number, sale_date, customer_name, payment_method, subtotal, discount, tax, total, created_by, created_at
		FROM retail_sales WHERE 1=1`
	args := []any{}
	idx := 1
	if filter.PaymentMethod != "" {
		query += fmt.Sprintf(" AND payment_method = $%d", idx)
		args = append(args, filter.PaymentMethod)
		idx++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND sale_date >= $%d", idx)
		args = append(args, *filter.From)
		idx++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND sale_date <= $%d", idx)
		args = append(args, *filter.To)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY sale_date DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list retail sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.RetailSale
	for rows.Next() {
		var s entity.RetailSale
		if err := rows.Scan(&s.ID, &s.Number, &s.SaleDate, &s.CustomerName, &s.PaymentMethod,
			&s.Subtotal, &s.Discount, &s.Tax, &s.Total, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan retail sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
