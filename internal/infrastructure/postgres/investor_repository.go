package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.InvestorRepository = (*InvestorRepo)(nil)

// InvestorRepo implementación del puerto InvestorRepository sobre PostgreSQL.
type InvestorRepo struct {
	pool *pgxpool.Pool
}

// NewInvestorRepository construye el adaptador de inversionistas.
func NewInvestorRepository(pool *pgxpool.Pool) *InvestorRepo {
	return &InvestorRepo{pool: pool}
}

// Create persiste un nuevo inversionista.
func (r *InvestorRepo) Create(inv *entity.Investor) error {
	query := `
		INSERT INTO investors (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		inv.ID, inv.Name, inv.Email, inv.Phone, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert investor: %w", err)
	}
	return nil
}

// GetByID obtiene un inversionista por ID.
func (r *InvestorRepo) GetByID(id string) (*entity.Investor, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM investors WHERE id = $1`
	var inv entity.Investor
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.Name, &inv.Email, &inv.Phone, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get investor: %w", err)
	}
	return &inv, nil
}

// Update actualiza un inversionista.
func (r *InvestorRepo) Update(inv *entity.Investor) error {
	query := `
		UPDATE investors SET name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		inv.ID, inv.Name, inv.Email, inv.Phone, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update investor: %w", err)
	}
	return nil
}

// List lista inversionistas con paginación.
func (r *InvestorRepo) List(limit, offset int) ([]*entity.Investor, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM investors ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list investors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Investor
	for rows.Next() {
		var inv entity.Investor
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Email, &inv.Phone, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan investor: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// ListInvestments lista las inversiones del inversionista con el número y
// estado de cada orden financiada.
func (r *InvestorRepo) ListInvestments(investorID string) ([]repository.InvestmentWithOrder, error) {
	query := `
		SELECT i.id, i.purchase_order_id, i.investor_id, i.amount, i.profit_percent, i.created_at,
		       po.number, po.status
		FROM investments i
		JOIN purchase_orders po ON po.id = i.purchase_order_id
		WHERE i.investor_id = $1
		ORDER BY i.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, investorID)
	if err != nil {
		return nil, fmt.Errorf("list investor investments: %w", err)
	}
	defer rows.Close()
	var list []repository.InvestmentWithOrder
	for rows.Next() {
		var inv entity.Investment
		var row repository.InvestmentWithOrder
		if err := rows.Scan(&inv.ID, &inv.PurchaseOrderID, &inv.InvestorID, &inv.Amount,
			&inv.ProfitPercent, &inv.CreatedAt, &row.OrderNumber, &row.OrderStatus); err != nil {
			return nil, fmt.Errorf("scan investor investment: %w", err)
		}
		row.Investment = &inv
		list = append(list, row)
	}
	return list, rows.Err()
}
