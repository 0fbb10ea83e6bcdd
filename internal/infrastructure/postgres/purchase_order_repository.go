package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de órdenes de compra. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la cabecera de la orden. El número lleva UNIQUE:
// una colisión de consecutivo se reporta como ErrConflict.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, number, vendor_name, status, order_date, received_at, total, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		po.ID, po.Number, po.VendorName, po.Status, po.OrderDate, po.ReceivedAt,
		po.Total, po.CreatedBy, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la orden.
func (r *PurchaseOrderRepo) CreateItem(item *entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_order_items (id, purchase_order_id, inventory_item_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseOrderID, item.InventoryItemID, item.Quantity, item.UnitCost,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order item: %w", err)
	}
	return nil
}

// CreateInvestment persiste el aporte de un inversionista a la orden.
func (r *PurchaseOrderRepo) CreateInvestment(inv *entity.Investment) error {
	query := `
		INSERT INTO investments (id, purchase_order_id, investor_id, amount, profit_percent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.PurchaseOrderID, inv.InvestorID, inv.Amount, inv.ProfitPercent, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert investment: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una orden.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, number, vendor_name, status, order_date, received_at, total, created_by, created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	var po entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&po.ID, &po.Number, &po.VendorName, &po.Status, &po.OrderDate, &po.ReceivedAt,
		&po.Total, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &po, nil
}

// GetItems obtiene las líneas de una orden.
func (r *PurchaseOrderRepo) GetItems(purchaseOrderID string) ([]*entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, purchase_order_id, inventory_item_id, quantity, unit_cost
		FROM purchase_order_items WHERE purchase_order_id = $1`
	rows, err := r.q.Query(context.Background(), query, purchaseOrderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.PurchaseOrderID, &it.InventoryItemID, &it.Quantity, &it.UnitCost); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetInvestments obtiene las inversiones asociadas a una orden.
func (r *PurchaseOrderRepo) GetInvestments(purchaseOrderID string) ([]*entity.Investment, error) {
	query := `
		SELECT id, purchase_order_id, investor_id, amount, profit_percent, created_at
		FROM investments WHERE purchase_order_id = $1`
	rows, err := r.q.Query(context.Background(), query, purchaseOrderID)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Investment
	for rows.Next() {
		var inv entity.Investment
		if err := rows.Scan(&inv.ID, &inv.PurchaseOrderID, &inv.InvestorID, &inv.Amount, &inv.ProfitPercent, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// List lista órdenes con filtros tipados y paginación.
func (r *PurchaseOrderRepo) List(filter repository.PurchaseOrderFilter, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, number, vendor_name, status, order_date, received_at, total, created_by, created_at, updated_at
		FROM purchase_orders WHERE 1=1`
	args := []any{}
	idx := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if filter.Vendor != "" {
		query += fmt.Sprintf(" AND vendor_name ILIKE $%d", idx)
		args = append(args, "%"+filter.Vendor+"%")
		idx++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND order_date >= $%d", idx)
		args = append(args, *filter.From)
		idx++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND order_date <= $%d", idx)
		args = append(args, *filter.To)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.Number, &po.VendorName, &po.Status, &po.OrderDate,
			&po.ReceivedAt, &po.Total, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &po)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la orden (ya validado por el guard de dominio).
func (r *PurchaseOrderRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkReceived pasa la orden de from a RECEIVED con fecha de recepción en una
// sola sentencia condicional: de dos recepciones concurrentes solo una gana
// (y solo una incrementa inventario).
func (r *PurchaseOrderRepo) MarkReceived(id, from string, at time.Time) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2, received_at = $3, updated_at = now() WHERE id = $1 AND status = $4`,
		id, document.PurchaseReceived, at, from,
	)
	if err != nil {
		return false, fmt.Errorf("mark purchase order received: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
