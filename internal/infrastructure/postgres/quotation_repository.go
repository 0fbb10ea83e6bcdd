package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación del puerto QuotationRepository sobre PostgreSQL (usable con pool o tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador de cotizaciones. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Create persiste la cabecera de una cotización. El número lleva UNIQUE:
// una colisión de consecutivo se reporta como ErrConflict.
func (r *QuotationRepo) Create(q *entity.Quotation) error {
	query := `
		INSERT INTO quotations (id, number, customer_name, status, valid_until, subtotal, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		q.ID, q.Number, q.CustomerName, q.Status, q.ValidUntil, q.Subtotal,
		q.CreatedBy, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de cotización.
func (r *QuotationRepo) CreateItem(item *entity.QuotationItem) error {
	query := `
		INSERT INTO quotation_items (id, quotation_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuotationID, item.ProductID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert quotation item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una cotización.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	query := `
		SELECT id, number, customer_name, status, valid_until, subtotal, created_by, created_at, updated_at
		FROM quotations WHERE id = $1`
	var q entity.Quotation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.Number, &q.CustomerName, &q.Status, &q.ValidUntil, &q.Subtotal,
		&q.CreatedBy, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return &q, nil
}

// GetItems obtiene las líneas de una cotización.
func (r *QuotationRepo) GetItems(quotationID string) ([]*entity.QuotationItem, error) {
	query := `
		SELECT id, quotation_id, product_id, quantity, unit_price
		FROM quotation_items WHERE quotation_id = $1`
	rows, err := r.q.Query(context.Background(), query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation items: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuotationItem
	for rows.Next() {
		var it entity.QuotationItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan quotation item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List lista cotizaciones con filtros tipados y paginación.
func (r *QuotationRepo) List(filter repository.QuotationFilter, limit, offset int) ([]*entity.Quotation, error) {
	query := `
		SELECT id, number, customer_name, status, valid_until, subtotal, created_by, created_at, updated_at
		FROM quotations WHERE 1=1`
	args := []any{}
	idx := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if filter.Customer != "" {
		query += fmt.Sprintf(" AND customer_name ILIKE $%d", idx)
		args = append(args, "%"+filter.Customer+"%")
		idx++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", idx)
		args = append(args, *filter.From)
		idx++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", idx)
		args = append(args, *filter.To)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var q entity.Quotation
		if err := rows.Scan(&q.ID, &q.Number, &q.CustomerName, &q.Status, &q.ValidUntil,
			&q.Subtotal, &q.CreatedBy, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la cotización (ya validado por el guard de dominio).
func (r *QuotationRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE quotations SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update quotation status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AcceptPending pasa la cotización de PENDING a ACCEPTED en una sola sentencia
// condicional: de dos aceptaciones concurrentes solo una ve filas afectadas.
func (r *QuotationRepo) AcceptPending(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE quotations SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`,
		id, document.QuotationAccepted, document.QuotationPending,
	)
	if err != nil {
		return false, fmt.Errorf("accept quotation: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ExpirePending pasa la cotización de PENDING a EXPIRED condicionalmente: si
// una aceptación concurrente ya cambió el estado, ninguna fila se ve afectada.
func (r *QuotationRepo) ExpirePending(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE quotations SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`,
		id, document.QuotationExpired, document.QuotationPending,
	)
	if err != nil {
		return false, fmt.Errorf("expire quotation: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// CreateBuyerPO persiste la orden de compra del comprador generada al aceptar.
// UNIQUE sobre number y sobre quotation_id (vínculo 1:1).
func (r *QuotationRepo) CreateBuyerPO(po *entity.BuyerPurchaseOrder) error {
	query := `
		INSERT INTO buyer_purchase_orders (id, number, quotation_id, po_date, pdf_url, external_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		po.ID, po.Number, po.QuotationID, po.PODate, po.PDFURL, po.ExternalURL, po.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert buyer purchase order: %w", err)
	}
	return nil
}

// GetBuyerPO obtiene la orden de compra vinculada a una cotización, si existe.
func (r *QuotationRepo) GetBuyerPO(quotationID string) (*entity.BuyerPurchaseOrder, error) {
	query := `
		SELECT id, number, quotation_id, po_date, pdf_url, external_url, created_at
		FROM buyer_purchase_orders WHERE quotation_id = $1`
	var po entity.BuyerPurchaseOrder
	err := r.q.QueryRow(context.Background(), query, quotationID).Scan(
		&po.ID, &po.Number, &po.QuotationID, &po.PODate, &po.PDFURL, &po.ExternalURL, &po.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get buyer purchase order: %w", err)
	}
	return &po, nil
}
