package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee empleado con salario mensual.
type Employee struct {
	ID          string
	Name        string
	Designation string
	Phone       string
	Salary      decimal.Decimal
	JoinedAt    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SalaryPayment pago de nómina de un empleado para un período (YYYY-MM).
// Único por (empleado, período).
type SalaryPayment struct {
	ID         string
	EmployeeID string
	Period     string // "2024-01"
	Amount     decimal.Decimal
	Bonus      decimal.Decimal
	PaidAt     time.Time
	CreatedBy  string
}
