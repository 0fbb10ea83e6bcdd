package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	Name        string          `json:"name" validate:"required"`
	Designation string          `json:"designation,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Salary      decimal.Decimal `json:"salary"`
	JoinedAt    string          `json:"joined_at,omitempty"` // YYYY-MM-DD
}

// UpdateEmployeeRequest body para PUT /api/employees/:id.
type UpdateEmployeeRequest struct {
	Name        string          `json:"name,omitempty"`
	Designation string          `json:"designation,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Salary      decimal.Decimal `json:"salary"`
}

// PaySalaryRequest body para POST /api/payroll/payments.
// Amount opcional: por defecto el salario del empleado.
type PaySalaryRequest struct {
	EmployeeID string          `json:"employee_id" validate:"required"`
	Period     string          `json:"period" validate:"required"` // "2024-01"
	Amount     decimal.Decimal `json:"amount"`
	Bonus      decimal.Decimal `json:"bonus"`
}

// EmployeeResponse empleado en respuestas.
type EmployeeResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Designation string          `json:"designation,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Salary      decimal.Decimal `json:"salary"`
	JoinedAt    string          `json:"joined_at"`
}

// SalaryPaymentResponse pago de nómina en respuestas.
type SalaryPaymentResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Period     string          `json:"period"`
	Amount     decimal.Decimal `json:"amount"`
	Bonus      decimal.Decimal `json:"bonus"`
	PaidAt     string          `json:"paid_at"`
}
