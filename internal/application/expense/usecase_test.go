package expense_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/expense"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// fakeExpenseRepo almacén en memoria.
type fakeExpenseRepo struct {
	mu       sync.Mutex
	expenses map[string]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[string]*entity.Expense)}
}

func (f *fakeExpenseRepo) Create(e *entity.Expense) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.expenses[e.ID] = &cp
	return nil
}

func (f *fakeExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.expenses[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeExpenseRepo) Update(e *entity.Expense) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.expenses[e.ID] = &cp
	return nil
}

func (f *fakeExpenseRepo) List(filter repository.ExpenseFilter, limit, offset int) ([]*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) UpdateStatus(id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.expenses[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Status = status
	return nil
}

func newExpenseFixture(t *testing.T) (*expense.ExpenseUseCase, string) {
	t.Helper()
	uc := expense.NewExpenseUseCase(newFakeExpenseRepo())
	created, err := uc.Create(context.Background(), "user-1", dto.CreateExpenseRequest{
		Category: "arriendo",
		Amount:   decimal.NewFromInt(800000),
		Note:     "local principal",
	})
	require.NoError(t, err)
	return uc, created.ID
}

func TestExpense_CreaEnPending(t *testing.T) {
	uc, id := newExpenseFixture(t)

	got, err := uc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, document.ExpensePending, got.Status)
	assert.Equal(t, "user-1", got.RecordedBy)
}

func TestExpense_MontoInvalido(t *testing.T) {
	uc := expense.NewExpenseUseCase(newFakeExpenseRepo())

	_, err := uc.Create(context.Background(), "user-1", dto.CreateExpenseRequest{
		Category: "otros",
		Amount:   decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExpense_AprobarYBloquear(t *testing.T) {
	uc, id := newExpenseFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.SetStatus(ctx, id, dto.UpdateExpenseStatusRequest{Status: document.ExpenseApproved}))

	// Aprobado: ni se edita ni se vuelve a transicionar.
	_, err := uc.Update(ctx, id, dto.CreateExpenseRequest{Category: "otros", Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrLocked, "un gasto aprobado no se edita")

	err = uc.SetStatus(ctx, id, dto.UpdateExpenseStatusRequest{Status: document.ExpenseRejected})
	assert.ErrorIs(t, err, domain.ErrLocked, "un gasto aprobado no cambia de estado")
}

func TestExpense_EditarMientrasPending(t *testing.T) {
	uc, id := newExpenseFixture(t)

	updated, err := uc.Update(context.Background(), id, dto.CreateExpenseRequest{
		Category: "servicios",
		Amount:   decimal.NewFromInt(120000),
	})
	require.NoError(t, err)
	assert.Equal(t, "servicios", updated.Category)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(120000)))
}

func TestExpense_RechazarPending(t *testing.T) {
	uc, id := newExpenseFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.SetStatus(ctx, id, dto.UpdateExpenseStatusRequest{Status: document.ExpenseRejected}))

	got, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, document.ExpenseRejected, got.Status)
}

func TestExpense_GastoInexistente(t *testing.T) {
	uc := expense.NewExpenseUseCase(newFakeExpenseRepo())

	_, err := uc.Get(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
