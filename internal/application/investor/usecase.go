package investor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// InvestorUseCase casos de uso de inversionistas y su portafolio de órdenes financiadas.
type InvestorUseCase struct {
	invRepo repository.InvestorRepository
}

// NewInvestorUseCase construye el caso de uso.
func NewInvestorUseCase(invRepo repository.InvestorRepository) *InvestorUseCase {
	return &InvestorUseCase{invRepo: invRepo}
}

// Create registra un inversionista.
func (uc *InvestorUseCase) Create(ctx context.Context, in dto.CreateInvestorRequest) (*dto.InvestorResponse, error) {
	now := time.Now()
	inv := &entity.Investor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.invRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInvestorResponse(inv), nil
}

// Get obtiene un inversionista por ID.
func (uc *InvestorUseCase) Get(ctx context.Context, id string) (*dto.InvestorResponse, error) {
	inv, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvestorResponse(inv), nil
}

// Update actualiza un inversionista.
func (uc *InvestorUseCase) Update(ctx context.Context, id string, in dto.CreateInvestorRequest) (*dto.InvestorResponse, error) {
	inv, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	inv.Name = in.Name
	inv.Email = in.Email
	inv.Phone = in.Phone
	inv.UpdatedAt = time.Now()
	if err := uc.invRepo.Update(inv); err != nil {
		return nil, err
	}
	return toInvestorResponse(inv), nil
}

// List lista inversionistas con paginación.
func (uc *InvestorUseCase) List(ctx context.Context, in dto.PageRequest) ([]dto.InvestorResponse, error) {
	in.DefaultPage()
	list, err := uc.invRepo.List(in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvestorResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInvestorResponse(inv))
	}
	return out, nil
}

// ListInvestments lista las inversiones del inversionista con el número y
// estado de cada orden financiada.
func (uc *InvestorUseCase) ListInvestments(ctx context.Context, id string) ([]dto.InvestorInvestmentResponse, error) {
	inv, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.invRepo.ListInvestments(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvestorInvestmentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.InvestorInvestmentResponse{
			ID:            row.Investment.ID,
			OrderNumber:   row.OrderNumber,
			OrderStatus:   row.OrderStatus,
			Amount:        row.Investment.Amount,
			ProfitPercent: row.Investment.ProfitPercent,
		})
	}
	return out, nil
}

func toInvestorResponse(inv *entity.Investor) *dto.InvestorResponse {
	return &dto.InvestorResponse{
		ID:    inv.ID,
		Name:  inv.Name,
		Email: inv.Email,
		Phone: inv.Phone,
	}
}
