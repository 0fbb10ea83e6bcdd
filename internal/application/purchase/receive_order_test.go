package purchase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/purchase"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePORepo struct {
	mu      sync.Mutex
	orders  map[string]*entity.PurchaseOrder
	items   map[string][]*entity.PurchaseOrderItem
	invests map[string][]*entity.Investment
}

func newFakePORepo() *fakePORepo {
	return &fakePORepo{
		orders:  make(map[string]*entity.PurchaseOrder),
		items:   make(map[string][]*entity.PurchaseOrderItem),
		invests: make(map[string][]*entity.Investment),
	}
}

func (f *fakePORepo) Create(po *entity.PurchaseOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *po
	f.orders[po.ID] = &cp
	return nil
}

func (f *fakePORepo) CreateItem(item *entity.PurchaseOrderItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[item.PurchaseOrderID] = append(f.items[item.PurchaseOrderID], &cp)
	return nil
}

func (f *fakePORepo) CreateInvestment(inv *entity.Investment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *inv
	f.invests[inv.PurchaseOrderID] = append(f.invests[inv.PurchaseOrderID], &cp)
	return nil
}

func (f *fakePORepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	po, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *po
	return &cp, nil
}

func (f *fakePORepo) GetItems(purchaseOrderID string) ([]*entity.PurchaseOrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[purchaseOrderID], nil
}

func (f *fakePORepo) GetInvestments(purchaseOrderID string) ([]*entity.Investment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invests[purchaseOrderID], nil
}

func (f *fakePORepo) List(filter repository.PurchaseOrderFilter, limit, offset int) ([]*entity.PurchaseOrder, error) {
	return nil, nil
}

func (f *fakePORepo) UpdateStatus(id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	po, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	po.Status = status
	return nil
}

// MarkReceived replica el UPDATE condicional: solo cambia si está en from.
func (f *fakePORepo) MarkReceived(id, from string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	po, ok := f.orders[id]
	if !ok || po.Status != from {
		return false, nil
	}
	po.Status = document.PurchaseReceived
	po.ReceivedAt = &at
	return true, nil
}

type fakeStockRepo struct {
	mu         sync.Mutex
	quantities map[string]decimal.Decimal
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{quantities: make(map[string]decimal.Decimal)}
}

func (f *fakeStockRepo) Create(item *entity.InventoryItem) error { return nil }
func (f *fakeStockRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (f *fakeStockRepo) GetByProductCode(code string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (f *fakeStockRepo) Update(item *entity.InventoryItem) error { return nil }
func (f *fakeStockRepo) Delete(id string) error                  { return nil }
func (f *fakeStockRepo) List(filter repository.InventoryFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (f *fakeStockRepo) DecrementStock(id string, qty decimal.Decimal) error {
	return nil
}

func (f *fakeStockRepo) IncrementStock(id string, qty decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quantities[id] = f.quantities[id].Add(qty)
	return nil
}

func (f *fakeStockRepo) quantity(id string) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.quantities[id]
}

type fakeSeqRepo struct{}

func (f *fakeSeqRepo) Next(t document.Type) (int64, error) { return 1, nil }

type fakePurchaseTxRunner struct {
	poRepo  *fakePORepo
	invRepo *fakeStockRepo
}

func (f *fakePurchaseTxRunner) RunPurchase(ctx context.Context, fn func(
	poRepo repository.PurchaseOrderRepository,
	invRepo repository.InventoryRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	return fn(f.poRepo, f.invRepo, &fakeSeqRepo{})
}

type fakePurchaseNotifier struct {
	mu       sync.Mutex
	received []string
}

func (f *fakePurchaseNotifier) OrderReceived(orderNumber, vendorName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, orderNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newReceiveFixture() (*purchase.ReceiveOrderUseCase, *fakePORepo, *fakeStockRepo, *fakePurchaseNotifier) {
	poRepo := newFakePORepo()
	invRepo := newFakeStockRepo()
	runner := &fakePurchaseTxRunner{poRepo: poRepo, invRepo: invRepo}
	notifier := &fakePurchaseNotifier{}
	purchaseUC := purchase.NewPurchaseUseCase(poRepo, nil, nil, runner)
	receiveUC := purchase.NewReceiveOrderUseCase(purchaseUC, poRepo, runner, notifier)
	return receiveUC, poRepo, invRepo, notifier
}

func dispatchedOrder(id string) *entity.PurchaseOrder {
	now := time.Now()
	return &entity.PurchaseOrder{
		ID:         id,
		Number:     "PO-0001",
		VendorName: "Importadora Sur",
		Status:     document.PurchaseDispatched,
		OrderDate:  now,
		Total:      decimal.NewFromInt(50000),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestReceive_AcreditaInventarioPorLinea(t *testing.T) {
	receiveUC, poRepo, invRepo, notifier := newReceiveFixture()
	require.NoError(t, poRepo.Create(dispatchedOrder("po1")))
	require.NoError(t, poRepo.CreateItem(&entity.PurchaseOrderItem{
		ID: "l1", PurchaseOrderID: "po1", InventoryItemID: "p1",
		Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(500),
	}))
	require.NoError(t, poRepo.CreateItem(&entity.PurchaseOrderItem{
		ID: "l2", PurchaseOrderID: "po1", InventoryItemID: "p2",
		Quantity: decimal.NewFromInt(4), UnitCost: decimal.NewFromInt(2000),
	}))

	resp, err := receiveUC.Receive(context.Background(), "po1")
	require.NoError(t, err)

	assert.Equal(t, document.PurchaseReceived, resp.Status)
	assert.NotEmpty(t, resp.ReceivedAt, "la recepción debe registrar fecha")
	assert.True(t, invRepo.quantity("p1").Equal(decimal.NewFromInt(10)))
	assert.True(t, invRepo.quantity("p2").Equal(decimal.NewFromInt(4)))
	assert.Equal(t, []string{"PO-0001"}, notifier.received)
}

func TestReceive_OrdenInexistente(t *testing.T) {
	receiveUC, _, _, _ := newReceiveFixture()

	_, err := receiveUC.Receive(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una orden PENDING no puede recibirse sin pasar por DISPATCHED.
func TestReceive_OrdenPendienteRechazada(t *testing.T) {
	receiveUC, poRepo, invRepo, _ := newReceiveFixture()
	po := dispatchedOrder("po1")
	po.Status = document.PurchasePending
	require.NoError(t, poRepo.Create(po))

	_, err := receiveUC.Receive(context.Background(), "po1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.True(t, invRepo.quantity("p1").IsZero(), "no debe acreditarse inventario")
}

func TestReceive_OrdenCanceladaBloqueada(t *testing.T) {
	receiveUC, poRepo, _, _ := newReceiveFixture()
	po := dispatchedOrder("po1")
	po.Status = document.PurchaseCancelled
	require.NoError(t, poRepo.Create(po))

	_, err := receiveUC.Receive(context.Background(), "po1")
	assert.ErrorIs(t, err, domain.ErrLocked)
}

// De N recepciones concurrentes solo una acredita el inventario.
func TestReceive_CarreraConcurrente_SoloUnaAcredita(t *testing.T) {
	receiveUC, poRepo, invRepo, _ := newReceiveFixture()
	require.NoError(t, poRepo.Create(dispatchedOrder("po1")))
	require.NoError(t, poRepo.CreateItem(&entity.PurchaseOrderItem{
		ID: "l1", PurchaseOrderID: "po1", InventoryItemID: "p1",
		Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(500),
	}))

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = receiveUC.Receive(context.Background(), "po1")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrLocked,
				"los perdedores ven la orden ya RECEIVED (sin salidas)")
		}
	}
	assert.Equal(t, 1, winners, "exactamente una recepción debe ganar")
	assert.True(t, invRepo.quantity("p1").Equal(decimal.NewFromInt(10)),
		"el inventario debe acreditarse exactamente una vez")
}
