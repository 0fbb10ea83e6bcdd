package sales_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	mu    sync.Mutex
	items map[string]*entity.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]*entity.InventoryItem)}
}

func (f *fakeInventoryRepo) Create(item *entity.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeInventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeInventoryRepo) GetByProductCode(code string) (*entity.InventoryItem, error) {
	return nil, nil
}

func (f *fakeInventoryRepo) Update(item *entity.InventoryItem) error { return nil }
func (f *fakeInventoryRepo) Delete(id string) error                  { return nil }

func (f *fakeInventoryRepo) List(filter repository.InventoryFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	return nil, nil
}

// DecrementStock replica el decremento condicional del repositorio real.
func (f *fakeInventoryRepo) DecrementStock(id string, qty decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	if item.Quantity.LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	item.Quantity = item.Quantity.Sub(qty)
	return nil
}

func (f *fakeInventoryRepo) IncrementStock(id string, qty decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.Quantity = item.Quantity.Add(qty)
	return nil
}

// snapshot y restore dan al fake semántica de rollback.
func (f *fakeInventoryRepo) snapshot() map[string]entity.InventoryItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := make(map[string]entity.InventoryItem, len(f.items))
	for id, item := range f.items {
		snap[id] = *item
	}
	return snap
}

func (f *fakeInventoryRepo) restore(snap map[string]entity.InventoryItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = make(map[string]*entity.InventoryItem, len(snap))
	for id, item := range snap {
		cp := item
		f.items[id] = &cp
	}
}

type fakeSaleRepo struct {
	mu    sync.Mutex
	sales map[string]*entity.RetailSale
	items map[string][]*entity.RetailSaleItem
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales: make(map[string]*entity.RetailSale),
		items: make(map[string][]*entity.RetailSaleItem),
	}
}

func (f *fakeSaleRepo) Create(sale *entity.RetailSale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *sale
	f.sales[sale.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) CreateItem(item *entity.RetailSaleItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[item.RetailSaleID] = append(f.items[item.RetailSaleID], &cp)
	return nil
}

func (f *fakeSaleRepo) GetByID(id string) (*entity.RetailSale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSaleRepo) GetItems(saleID string) ([]*entity.RetailSaleItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[saleID], nil
}

func (f *fakeSaleRepo) List(filter repository.RetailSaleFilter, limit, offset int) ([]*entity.RetailSale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) delete(saleID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sales, saleID)
	delete(f.items, saleID)
}

type fakeSeqRepo struct {
	mu   sync.Mutex
	seqs map[document.Type]int64
}

func (f *fakeSeqRepo) Next(t document.Type) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seqs == nil {
		f.seqs = make(map[document.Type]int64)
	}
	f.seqs[t]++
	return f.seqs[t], nil
}

// fakeSaleTxRunner simula la atomicidad: si fn falla, restaura el inventario y
// borra la venta a medio crear, como haría el rollback real.
type fakeSaleTxRunner struct {
	saleRepo *fakeSaleRepo
	invRepo  *fakeInventoryRepo
	seqRepo  *fakeSeqRepo
}

func (f *fakeSaleTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.RetailSaleRepository,
	invRepo repository.InventoryRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	snap := f.invRepo.snapshot()
	before := make(map[string]bool)
	for id := range f.saleRepo.sales {
		before[id] = true
	}

	if err := fn(f.saleRepo, f.invRepo, f.seqRepo); err != nil {
		f.invRepo.restore(snap)
		for id := range f.saleRepo.sales {
			if !before[id] {
				f.saleRepo.delete(id)
			}
		}
		return err
	}
	return nil
}

type fakeSaleNotifier struct {
	mu       sync.Mutex
	sales    []string
	lowStock []string
}

func (f *fakeSaleNotifier) SaleCreated(saleNumber, total string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sales = append(f.sales, saleNumber)
}

func (f *fakeSaleNotifier) LowStock(productCode, productName, quantity string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lowStock = append(f.lowStock, productCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newSaleFixture() (*sales.CreateSaleUseCase, *fakeInventoryRepo, *fakeSaleRepo, *fakeSaleNotifier) {
	invRepo := newFakeInventoryRepo()
	saleRepo := newFakeSaleRepo()
	runner := &fakeSaleTxRunner{saleRepo: saleRepo, invRepo: invRepo, seqRepo: &fakeSeqRepo{}}
	notifier := &fakeSaleNotifier{}
	return sales.NewCreateSaleUseCase(runner, notifier), invRepo, saleRepo, notifier
}

func seedProduct(t *testing.T, invRepo *fakeInventoryRepo, id, code string, qty, minStock int64) {
	t.Helper()
	now := time.Now()
	require.NoError(t, invRepo.Create(&entity.InventoryItem{
		ID:          id,
		ProductCode: code,
		Name:        "Producto " + code,
		Quantity:    decimal.NewFromInt(qty),
		SalePrice:   decimal.NewFromInt(1000),
		MinStock:    decimal.NewFromInt(minStock),
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_DescuentaInventarioYCalculaTotales(t *testing.T) {
	uc, invRepo, _, notifier := newSaleFixture()
	seedProduct(t, invRepo, "p1", "A-001", 10, 2)
	seedProduct(t, invRepo, "p2", "A-002", 5, 1)

	resp, err := uc.CreateSale(context.Background(), "user-1", dto.CreateRetailSaleRequest{
		CustomerName:  "Cliente Mostrador",
		PaymentMethod: entity.PaymentCash,
		Discount:      dec(500),
		Tax:           dec(190),
		Items: []dto.RetailSaleItemRequest{
			{InventoryItemID: "p1", Quantity: dec(3), UnitPrice: dec(1000)},
			{InventoryItemID: "p2", Quantity: dec(2), UnitPrice: dec(2000)},
		},
	})
	require.NoError(t, err)

	// Subtotal = 3×1000 + 2×2000 = 7000; Total = 7000 - 500 + 190 = 6690.
	assert.True(t, resp.Subtotal.Equal(dec(7000)), "subtotal: %s", resp.Subtotal)
	assert.True(t, resp.Total.Equal(dec(6690)), "total: %s", resp.Total)
	assert.True(t, strings.HasPrefix(resp.Number, "RS-"), "número: %s", resp.Number)
	assert.Len(t, resp.Items, 2)

	p1, _ := invRepo.GetByID("p1")
	p2, _ := invRepo.GetByID("p2")
	assert.True(t, p1.Quantity.Equal(dec(7)), "p1 debe quedar en 7: %s", p1.Quantity)
	assert.True(t, p2.Quantity.Equal(dec(3)), "p2 debe quedar en 3: %s", p2.Quantity)

	assert.Equal(t, []string{resp.Number}, notifier.sales)
}

func TestCreateSale_StockInsuficiente_NoDescuentaNada(t *testing.T) {
	uc, invRepo, saleRepo, notifier := newSaleFixture()
	seedProduct(t, invRepo, "p1", "A-001", 10, 2)
	seedProduct(t, invRepo, "p2", "A-002", 1, 0) // solo 1 unidad

	_, err := uc.CreateSale(context.Background(), "user-1", dto.CreateRetailSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items: []dto.RetailSaleItemRequest{
			{InventoryItemID: "p1", Quantity: dec(3), UnitPrice: dec(1000)},
			{InventoryItemID: "p2", Quantity: dec(5), UnitPrice: dec(2000)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "A-002", "el error debe nombrar el producto sin stock")

	// Rollback: ni la primera línea descontó, ni la venta existe.
	p1, _ := invRepo.GetByID("p1")
	assert.True(t, p1.Quantity.Equal(dec(10)), "p1 no debe descontarse: %s", p1.Quantity)
	assert.Empty(t, saleRepo.sales, "la venta no debe persistirse")
	assert.Empty(t, notifier.sales, "no debe notificarse una venta fallida")
}

func TestCreateSale_ProductoInexistente(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	_, err := uc.CreateSale(context.Background(), "user-1", dto.CreateRetailSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items: []dto.RetailSaleItemRequest{
			{InventoryItemID: "no-existe", Quantity: dec(1), UnitPrice: dec(1000)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_CantidadInvalida(t *testing.T) {
	uc, invRepo, _, _ := newSaleFixture()
	seedProduct(t, invRepo, "p1", "A-001", 10, 2)

	_, err := uc.CreateSale(context.Background(), "user-1", dto.CreateRetailSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items: []dto.RetailSaleItemRequest{
			{InventoryItemID: "p1", Quantity: dec(0), UnitPrice: dec(1000)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_TotalNegativoPorDescuento(t *testing.T) {
	uc, invRepo, _, _ := newSaleFixture()
	seedProduct(t, invRepo, "p1", "A-001", 10, 2)

	_, err := uc.CreateSale(context.Background(), "user-1", dto.CreateRetailSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Discount:      dec(5000), // mayor que el subtotal
		Items: []dto.RetailSaleItemRequest{
			{InventoryItemID: "p1", Quantity: dec(1), UnitPrice: dec(1000)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La venta que deja un producto en o bajo su umbral mínimo dispara la alerta.
func TestCreateSale_AlertaDeStockBajo(t *testing.T) {
	uc, invRepo, _, notifier := newSaleFixture()
	seedProduct(t, invRepo, "p1", "A-001", 5, 3)

	_, err := uc.CreateSale(context.Background(), "user-1", dto.CreateRetailSaleRequest{
		PaymentMethod: entity.PaymentCard,
		Items: []dto.RetailSaleItemRequest{
			{InventoryItemID: "p1", Quantity: dec(2), UnitPrice: dec(1000)}, // quedan 3 == MinStock
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A-001"}, notifier.lowStock,
		"quedar en el umbral mínimo debe disparar la alerta")
}

func TestCreateSale_ConsecutivosCrecientes(t *testing.T) {
	uc, invRepo, _, _ := newSaleFixture()
	seedProduct(t, invRepo, "p1", "A-001", 100, 2)

	first, err := uc.CreateSale(context.Background(), "user-1", dto.CreateRetailSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.RetailSaleItemRequest{{InventoryItemID: "p1", Quantity: dec(1), UnitPrice: dec(1000)}},
	})
	require.NoError(t, err)
	second, err := uc.CreateSale(context.Background(), "user-1", dto.CreateRetailSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.RetailSaleItemRequest{{InventoryItemID: "p1", Quantity: dec(1), UnitPrice: dec(1000)}},
	})
	require.NoError(t, err)

	assert.Equal(t, "RS-0001", first.Number)
	assert.Equal(t, "RS-0002", second.Number)
}
