package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// InvestmentWithOrder inversión junto con el número de la orden financiada.
type InvestmentWithOrder struct {
	Investment  *entity.Investment
	OrderNumber string
	OrderStatus string
}

// InvestorRepository define el puerto de persistencia para Investor.
type InvestorRepository interface {
	Create(inv *entity.Investor) error
	GetByID(id string) (*entity.Investor, error)
	Update(inv *entity.Investor) error
	List(limit, offset int) ([]*entity.Investor, error)
	ListInvestments(investorID string) ([]InvestmentWithOrder, error)
}
