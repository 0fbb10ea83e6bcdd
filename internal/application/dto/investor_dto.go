package dto

import "github.com/shopspring/decimal"

// CreateInvestorRequest body para POST /api/investors.
type CreateInvestorRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

// InvestorResponse inversionista en respuestas.
type InvestorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// InvestorInvestmentResponse inversión con el número de orden financiada.
type InvestorInvestmentResponse struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"` // PO-0003
	OrderStatus   string          `json:"order_status"`
	Amount        decimal.Decimal `json:"amount"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}
