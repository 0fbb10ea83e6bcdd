package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso de gastos: registro, edición mientras están
// PENDING y flujo de aprobación con el guard de estados.
type ExpenseUseCase struct {
	expRepo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expRepo: expRepo}
}

// Create registra un gasto en estado PENDING.
func (uc *ExpenseUseCase) Create(ctx context.Context, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.Expense{
		ID:         uuid.New().String(),
		Category:   in.Category,
		Amount:     in.Amount,
		Note:       in.Note,
		Status:     document.ExpensePending,
		RecordedBy: userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.expRepo.Create(e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Get obtiene un gasto por ID.
func (uc *ExpenseUseCase) Get(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := uc.expRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(e), nil
}

// Update edita un gasto. Solo los PENDING se pueden modificar: un gasto ya
// aprobado o rechazado está bloqueado.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.expRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.Status != document.ExpensePending {
		return nil, domain.ErrLocked
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	e.Category = in.Category
	e.Amount = in.Amount
	e.Note = in.Note
	e.UpdatedAt = time.Now()
	if err := uc.expRepo.Update(e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// List lista gastos con filtros tipados.
func (uc *ExpenseUseCase) List(ctx context.Context, in dto.ListExpensesRequest) ([]dto.ExpenseResponse, error) {
	in.DefaultPage()
	filter := repository.ExpenseFilter{Status: in.Status, Category: in.Category}
	list, err := uc.expRepo.List(filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

// SetStatus aprueba o rechaza un gasto PENDING vía el guard de estados.
func (uc *ExpenseUseCase) SetStatus(ctx context.Context, id string, in dto.UpdateExpenseStatusRequest) error {
	e, err := uc.expRepo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if err := document.GuardTransition(document.TypeExpense, e.Status, in.Status); err != nil {
		return err
	}
	return uc.expRepo.UpdateStatus(id, in.Status)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:         e.ID,
		Category:   e.Category,
		Amount:     e.Amount,
		Note:       e.Note,
		Status:     e.Status,
		RecordedBy: e.RecordedBy,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}
