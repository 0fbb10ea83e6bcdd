package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository construye el adaptador de gastos.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepo {
	return &ExpenseRepo{pool: pool}
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, category, amount, note, status, recorded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Category, e.Amount, e.Note, e.Status, e.RecordedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `
		SELECT id, category, amount, note, status, recorded_by, created_at, updated_at
		FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Category, &e.Amount, &e.Note, &e.Status, &e.RecordedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// Update actualiza categoría, monto y nota de un gasto.
func (r *ExpenseRepo) Update(e *entity.Expense) error {
	query := `
		UPDATE expenses SET category = $2, amount = $3, note = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Category, e.Amount, e.Note, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// List lista gastos con filtros tipados y paginación.
func (r *ExpenseRepo) List(filter repository.ExpenseFilter, limit, offset int) ([]*entity.Expense, error) {
	query := `
		SELECT id, category, amount, note, status, recorded_by, created_at, updated_at
		FROM expenses WHERE 1=1`
	args := []any{}
	idx := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", idx)
		args = append(args, filter.Category)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &e.Note, &e.Status,
			&e.RecordedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del gasto (ya validado por el guard de dominio).
func (r *ExpenseRepo) UpdateStatus(id, status string) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE expenses SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update expense status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
