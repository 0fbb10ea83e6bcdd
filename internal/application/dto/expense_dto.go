package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Category string          `json:"category" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}

// UpdateExpenseStatusRequest body para PATCH /api/expenses/:id/status (solo admin).
type UpdateExpenseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

// ListExpensesRequest query params del listado.
type ListExpensesRequest struct {
	PageRequest
	Status   string `query:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Category string `query:"category"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID         string          `json:"id"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	Status     string          `json:"status"`
	RecordedBy string          `json:"recorded_by"`
	CreatedAt  string          `json:"created_at"`
}
