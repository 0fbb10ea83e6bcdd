package quotation_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/quotation"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria — replican la semántica condicional del repositorio real
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuotationRepo struct {
	mu         sync.Mutex
	quotations map[string]*entity.Quotation
	buyerPOs   map[string]*entity.BuyerPurchaseOrder // por quotationID
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{
		quotations: make(map[string]*entity.Quotation),
		buyerPOs:   make(map[string]*entity.BuyerPurchaseOrder),
	}
}

func (f *fakeQuotationRepo) Create(q *entity.Quotation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *q
	f.quotations[q.ID] = &cp
	return nil
}

func (f *fakeQuotationRepo) CreateItem(item *entity.QuotationItem) error { return nil }

func (f *fakeQuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.quotations[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuotationRepo) GetItems(quotationID string) ([]*entity.QuotationItem, error) {
	return nil, nil
}

func (f *fakeQuotationRepo) List(filter repository.QuotationFilter, limit, offset int) ([]*entity.Quotation, error) {
	return nil, nil
}

func (f *fakeQuotationRepo) UpdateStatus(id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.quotations[id]
	if !ok {
		return domain.ErrNotFound
	}
	q.Status = status
	return nil
}

// AcceptPending replica el UPDATE condicional: solo cambia si está PENDING.
func (f *fakeQuotationRepo) AcceptPending(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.quotations[id]
	if !ok || q.Status != document.QuotationPending {
		return false, nil
	}
	q.Status = document.QuotationAccepted
	return true, nil
}

// ExpirePending replica el UPDATE condicional: solo expira si sigue PENDING.
func (f *fakeQuotationRepo) ExpirePending(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.quotations[id]
	if !ok || q.Status != document.QuotationPending {
		return false, nil
	}
	q.Status = document.QuotationExpired
	return true, nil
}

func (f *fakeQuotationRepo) CreateBuyerPO(po *entity.BuyerPurchaseOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *po
	f.buyerPOs[po.QuotationID] = &cp
	return nil
}

func (f *fakeQuotationRepo) GetBuyerPO(quotationID string) (*entity.BuyerPurchaseOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	po, ok := f.buyerPOs[quotationID]
	if !ok {
		return nil, nil
	}
	cp := *po
	return &cp, nil
}

type fakeSequenceRepo struct {
	mu   sync.Mutex
	seqs map[document.Type]int64
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{seqs: make(map[document.Type]int64)}
}

func (f *fakeSequenceRepo) Next(t document.Type) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seqs[t]++
	return f.seqs[t], nil
}

// fakeTxRunner ejecuta la función directamente sobre los fakes (sin tx real).
type fakeTxRunner struct {
	quotRepo *fakeQuotationRepo
	seqRepo  *fakeSequenceRepo
}

func (f *fakeTxRunner) RunQuotation(ctx context.Context, fn func(
	quotRepo repository.QuotationRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	return fn(f.quotRepo, f.seqRepo)
}

type fakeNotifier struct {
	mu       sync.Mutex
	accepted []string
}

func (f *fakeNotifier) QuotationAccepted(quotationNumber, bpoNumber, customerName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accepted = append(f.accepted, quotationNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newAcceptFixture() (*quotation.AcceptQuotationUseCase, *fakeQuotationRepo, *fakeNotifier) {
	quotRepo := newFakeQuotationRepo()
	runner := &fakeTxRunner{quotRepo: quotRepo, seqRepo: newFakeSequenceRepo()}
	notifier := &fakeNotifier{}
	quotUC := quotation.NewQuotationUseCase(quotRepo, nil, runner)
	acceptUC := quotation.NewAcceptQuotationUseCase(quotUC, quotRepo, runner, notifier)
	return acceptUC, quotRepo, notifier
}

func pendingQuotation(id string) *entity.Quotation {
	now := time.Now()
	return &entity.Quotation{
		ID:           id,
		Number:       "QT-0001",
		CustomerName: "Distribuidora Norte",
		Status:       document.QuotationPending,
		ValidUntil:   now.AddDate(0, 0, 7),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAccept_GeneraOrdenDeCompraVinculada(t *testing.T) {
	acceptUC, quotRepo, notifier := newAcceptFixture()
	require.NoError(t, quotRepo.Create(pendingQuotation("q1")))

	resp, err := acceptUC.Accept(context.Background(), "q1", dto.AcceptQuotationRequest{})
	require.NoError(t, err)

	assert.Equal(t, document.QuotationAccepted, resp.Quotation.Status)
	assert.Equal(t, "q1", resp.BuyerPO.QuotationID)
	assert.True(t, strings.HasPrefix(resp.BuyerPO.Number, "BPO-"),
		"la orden generada lleva consecutivo BPO-nnnn")
	assert.Equal(t, []string{"QT-0001"}, notifier.accepted,
		"la aceptación debe notificar después de confirmar")
}

func TestAccept_CotizacionInexistente(t *testing.T) {
	acceptUC, _, _ := newAcceptFixture()

	_, err := acceptUC.Accept(context.Background(), "no-existe", dto.AcceptQuotationRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccept_YaAceptada(t *testing.T) {
	acceptUC, quotRepo, _ := newAcceptFixture()
	q := pendingQuotation("q1")
	q.Status = document.QuotationAccepted
	require.NoError(t, quotRepo.Create(q))

	_, err := acceptUC.Accept(context.Background(), "q1", dto.AcceptQuotationRequest{})
	assert.ErrorIs(t, err, domain.ErrAlreadyAccepted)
}

func TestAccept_YaRechazada(t *testing.T) {
	acceptUC, quotRepo, _ := newAcceptFixture()
	q := pendingQuotation("q1")
	q.Status = document.QuotationRejected
	require.NoError(t, quotRepo.Create(q))

	_, err := acceptUC.Accept(context.Background(), "q1", dto.AcceptQuotationRequest{})
	assert.ErrorIs(t, err, domain.ErrAlreadyRejected)
}

// Una cotización PENDING pero vencida se expira perezosamente y no se acepta.
func TestAccept_VencidaSeExpiraYBloquea(t *testing.T) {
	acceptUC, quotRepo, _ := newAcceptFixture()
	q := pendingQuotation("q1")
	q.ValidUntil = time.Now().AddDate(0, 0, -3)
	require.NoError(t, quotRepo.Create(q))

	_, err := acceptUC.Accept(context.Background(), "q1", dto.AcceptQuotationRequest{})
	assert.ErrorIs(t, err, domain.ErrLocked)

	stored, _ := quotRepo.GetByID("q1")
	assert.Equal(t, document.QuotationExpired, stored.Status,
		"la cotización vencida debe quedar EXPIRED")
}

func TestAccept_FechaDeOrdenInvalida(t *testing.T) {
	acceptUC, quotRepo, _ := newAcceptFixture()
	require.NoError(t, quotRepo.Create(pendingQuotation("q1")))

	_, err := acceptUC.Accept(context.Background(), "q1", dto.AcceptQuotationRequest{PODate: "29/11/2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// De N aceptaciones concurrentes exactamente una gana; el resto recibe
// ErrAlreadyAccepted. Nunca se generan dos órdenes para la misma cotización.
func TestAccept_CarreraConcurrente_SoloUnaGana(t *testing.T) {
	acceptUC, quotRepo, notifier := newAcceptFixture()
	require.NoError(t, quotRepo.Create(pendingQuotation("q1")))

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = acceptUC.Accept(context.Background(), "q1", dto.AcceptQuotationRequest{})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyAccepted,
				"los perdedores deben recibir el error preciso")
		}
	}
	assert.Equal(t, 1, winners, "exactamente una aceptación debe ganar")

	assert.Len(t, notifier.accepted, 1, "solo el ganador notifica")

	po, err := quotRepo.GetBuyerPO("q1")
	require.NoError(t, err)
	require.NotNil(t, po, "debe existir exactamente una orden generada")
	assert.Equal(t, "BPO-0001", po.Number)
}
