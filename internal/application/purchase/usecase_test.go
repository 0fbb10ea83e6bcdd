package purchase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/purchase"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// fakeCatalogRepo inventario en memoria para las consultas de producto de Create.
type fakeCatalogRepo struct {
	mu       sync.Mutex
	products map[string]*entity.InventoryItem
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{products: make(map[string]*entity.InventoryItem)}
}

func (f *fakeCatalogRepo) Create(item *entity.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.products[item.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) GetByID(id string) (*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeCatalogRepo) GetByProductCode(code string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (f *fakeCatalogRepo) Update(item *entity.InventoryItem) error { return nil }
func (f *fakeCatalogRepo) Delete(id string) error                  { return nil }
func (f *fakeCatalogRepo) List(filter repository.InventoryFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	return nil, nil
}
func (f *fakeCatalogRepo) DecrementStock(id string, qty decimal.Decimal) error { return nil }
func (f *fakeCatalogRepo) IncrementStock(id string, qty decimal.Decimal) error { return nil }

// fakeInvestorRepo inversionistas en memoria.
type fakeInvestorRepo struct {
	mu        sync.Mutex
	investors map[string]*entity.Investor
}

func newFakeInvestorRepo() *fakeInvestorRepo {
	return &fakeInvestorRepo{investors: make(map[string]*entity.Investor)}
}

func (f *fakeInvestorRepo) Create(inv *entity.Investor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *inv
	f.investors[inv.ID] = &cp
	return nil
}

func (f *fakeInvestorRepo) GetByID(id string) (*entity.Investor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.investors[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvestorRepo) Update(inv *entity.Investor) error { return nil }
func (f *fakeInvestorRepo) List(limit, offset int) ([]*entity.Investor, error) {
	return nil, nil
}
func (f *fakeInvestorRepo) ListInvestments(investorID string) ([]repository.InvestmentWithOrder, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newPurchaseFixture(t *testing.T) (*purchase.PurchaseUseCase, *fakePORepo) {
	t.Helper()
	poRepo := newFakePORepo()
	catalog := newFakeCatalogRepo()
	investors := newFakeInvestorRepo()
	runner := &fakePurchaseTxRunner{poRepo: poRepo, invRepo: newFakeStockRepo()}

	require.NoError(t, catalog.Create(&entity.InventoryItem{ID: "p1", ProductCode: "A-001", Name: "Cable HDMI"}))
	require.NoError(t, investors.Create(&entity.Investor{ID: "i1", Name: "Carlos Peña"}))
	require.NoError(t, investors.Create(&entity.Investor{ID: "i2", Name: "Rosa Duarte"}))

	return purchase.NewPurchaseUseCase(poRepo, catalog, investors, runner), poRepo
}

// Línea de 10 × 500 = 5000: el total contra el que deben cuadrar los aportes.
func fundedOrderRequest(investments []dto.InvestmentRequest) dto.CreatePurchaseOrderRequest {
	return dto.CreatePurchaseOrderRequest{
		VendorName: "Importadora Sur",
		Items: []dto.PurchaseOrderItemRequest{
			{InventoryItemID: "p1", Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(500)},
		},
		Investments: investments,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePO_ConInversionesValidas(t *testing.T) {
	uc, poRepo := newPurchaseFixture(t)

	resp, err := uc.Create(context.Background(), "admin-1", fundedOrderRequest([]dto.InvestmentRequest{
		{InvestorID: "i1", Amount: decimal.NewFromInt(3000), ProfitPercent: decimal.NewFromInt(60)},
		{InvestorID: "i2", Amount: decimal.NewFromInt(2000), ProfitPercent: decimal.NewFromInt(40)},
	}))
	require.NoError(t, err)

	assert.Equal(t, "PO-0001", resp.Number)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(5000)))
	assert.Len(t, resp.Investments, 2, "los aportes deben quedar registrados con la orden")

	stored, err := poRepo.GetInvestments(resp.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

// Σ aportes debe igualar el total de la orden.
func TestCreatePO_AportesNoCuadranConElTotal(t *testing.T) {
	uc, poRepo := newPurchaseFixture(t)

	_, err := uc.Create(context.Background(), "admin-1", fundedOrderRequest([]dto.InvestmentRequest{
		{InvestorID: "i1", Amount: decimal.NewFromInt(3000), ProfitPercent: decimal.NewFromInt(60)},
		{InvestorID: "i2", Amount: decimal.NewFromInt(1000), ProfitPercent: decimal.NewFromInt(40)},
	}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "4000 aportados contra 5000 de orden")
	assert.Empty(t, poRepo.orders, "no debe quedar ninguna orden creada")
}

// Σ porcentajes de utilidad debe ser exactamente 100.
func TestCreatePO_PorcentajesNoSuman100(t *testing.T) {
	uc, _ := newPurchaseFixture(t)

	_, err := uc.Create(context.Background(), "admin-1", fundedOrderRequest([]dto.InvestmentRequest{
		{InvestorID: "i1", Amount: decimal.NewFromInt(3000), ProfitPercent: decimal.NewFromInt(60)},
		{InvestorID: "i2", Amount: decimal.NewFromInt(2000), ProfitPercent: decimal.NewFromInt(30)},
	}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePO_InversionistaInexistente(t *testing.T) {
	uc, _ := newPurchaseFixture(t)

	_, err := uc.Create(context.Background(), "admin-1", fundedOrderRequest([]dto.InvestmentRequest{
		{InvestorID: "no-existe", Amount: decimal.NewFromInt(5000), ProfitPercent: decimal.NewFromInt(100)},
	}))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePO_SinInversionesNoExigeCuadre(t *testing.T) {
	uc, _ := newPurchaseFixture(t)

	resp, err := uc.Create(context.Background(), "admin-1", fundedOrderRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, document.PurchasePending, resp.Status)
	assert.Empty(t, resp.Investments)
}

// RECEIVED no entra por el PATCH de estado: la recepción tiene su propio
// endpoint, que además acredita el inventario y fija la fecha.
func TestUpdateStatusPO_RecibidoSoloPorSuEndpoint(t *testing.T) {
	uc, poRepo := newPurchaseFixture(t)
	require.NoError(t, poRepo.Create(dispatchedOrder("po1")))

	err := uc.UpdateStatus(context.Background(), "po1", dto.UpdatePurchaseOrderStatusRequest{
		Status: document.PurchaseReceived,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, _ := poRepo.GetByID("po1")
	assert.Equal(t, document.PurchaseDispatched, stored.Status,
		"la orden debe seguir DISPATCHED para que la recepción real proceda")
	assert.Nil(t, stored.ReceivedAt)
}

func TestUpdateStatusPO_DespacharYCancelar(t *testing.T) {
	uc, poRepo := newPurchaseFixture(t)
	ctx := context.Background()

	po := dispatchedOrder("po1")
	po.Status = document.PurchasePending
	require.NoError(t, poRepo.Create(po))

	require.NoError(t, uc.UpdateStatus(ctx, "po1", dto.UpdatePurchaseOrderStatusRequest{
		Status: document.PurchaseDispatched,
	}))
	stored, _ := poRepo.GetByID("po1")
	assert.Equal(t, document.PurchaseDispatched, stored.Status)

	// Despachada ya no se cancela.
	err := uc.UpdateStatus(ctx, "po1", dto.UpdatePurchaseOrderStatusRequest{
		Status: document.PurchaseCancelled,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
