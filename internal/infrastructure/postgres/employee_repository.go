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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de empleados y nómina.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, designation, phone, salary, joined_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Name, e.Designation, e.Phone, e.Salary, e.JoinedAt, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `
		SELECT id, name, designation, phone, salary, joined_at, created_at, updated_at
		FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Designation, &e.Phone, &e.Salary, &e.JoinedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, designation = $3, phone = $4, salary = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Name, e.Designation, e.Phone, e.Salary, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// List lista empleados con paginación.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT id, name, designation, phone, salary, joined_at, created_at, updated_at
		FROM employees ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Designation, &e.Phone, &e.Salary,
			&e.JoinedAt, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CreatePayment persiste un pago de nómina. UNIQUE (employee_id, period):
// un segundo pago del mismo período se reporta como ErrDuplicate.
func (r *EmployeeRepo) CreatePayment(p *entity.SalaryPayment) error {
	query := `
		INSERT INTO salary_payments (id, employee_id, period, amount, bonus, paid_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.EmployeeID, p.Period, p.Amount, p.Bonus, p.PaidAt, p.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert salary payment: %w", err)
	}
	return nil
}

// ListPaymentsByEmployee lista los pagos de nómina de un empleado.
func (r *EmployeeRepo) ListPaymentsByEmployee(employeeID string) ([]*entity.SalaryPayment, error) {
	query := `
		SELECT id, employee_id, period, amount, bonus, paid_at, created_by
		FROM salary_payments WHERE employee_id = $1 ORDER BY period DESC`
	return r.listPayments(query, employeeID)
}

// ListPaymentsByPeriod lista los pagos de nómina de un período (YYYY-MM).
func (r *EmployeeRepo) ListPaymentsByPeriod(period string) ([]*entity.SalaryPayment, error) {
	query := `
		SELECT id, employee_id, period, amount, bonus, paid_at, created_by
		FROM salary_payments WHERE period = $1 ORDER BY paid_at ASC`
	return r.listPayments(query, period)
}

func (r *EmployeeRepo) listPayments(query string, arg any) ([]*entity.SalaryPayment, error) {
	rows, err := r.pool.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list salary payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalaryPayment
	for rows.Next() {
		var p entity.SalaryPayment
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Period, &p.Amount, &p.Bonus, &p.PaidAt, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan salary payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
