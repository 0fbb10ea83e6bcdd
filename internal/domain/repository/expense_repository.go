package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// ExpenseFilter filtros tipados para listar gastos.
type ExpenseFilter struct {
	Status   string
	Category string
}

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(e *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Update(e *entity.Expense) error
	List(filter ExpenseFilter, limit, offset int) ([]*entity.Expense, error)
	UpdateStatus(id, status string) error
}
