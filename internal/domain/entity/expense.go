package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto del negocio con flujo de aprobación.
type Expense struct {
	ID         string
	Category   string
	Amount     decimal.Decimal
	Note       string
	Status     string // PENDING | APPROVED | REJECTED
	RecordedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
