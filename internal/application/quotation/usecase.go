package quotation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// QuotationUseCase casos de uso de cotizaciones: creación numerada, consulta
// con expiración perezosa, listado y cambios de estado.
type QuotationUseCase struct {
	quotRepo repository.QuotationRepository
	invRepo  repository.InventoryRepository
	txRunner TxRunner
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(
	quotRepo repository.QuotationRepository,
	invRepo repository.InventoryRepository,
	txRunner TxRunner,
) *QuotationUseCase {
	return &QuotationUseCase{quotRepo: quotRepo, invRepo: invRepo, txRunner: txRunner}
}

// Create crea una cotización PENDING con consecutivo QT-nnnn. El consecutivo y
// la inserción comparten transacción: si la inserción falla, el número no se quema.
func (uc *QuotationUseCase) Create(ctx context.Context, userID string, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	validUntil, err := time.Parse(dateLayout, in.ValidUntil)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// Validar productos y calcular subtotal fuera de la tx (solo lectura).
	subtotal := decimal.Zero
	for i := range in.Items {
		item := &in.Items[i]
		if !item.Quantity.GreaterThan(decimal.Zero) || item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.invRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if item.UnitPrice.IsZero() {
			item.UnitPrice = product.SalePrice
		}
		subtotal = subtotal.Add(item.Quantity.Mul(item.UnitPrice))
	}

	now := time.Now()
	q := &entity.Quotation{
		ID:           uuid.New().String(),
		CustomerName: in.CustomerName,
		Status:       document.QuotationPending,
		ValidUntil:   validUntil,
		Subtotal:     subtotal,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = runWithNumberRetry(func() error {
		return uc.txRunner.RunQuotation(ctx, func(
			quotRepo repository.QuotationRepository,
			seqRepo repository.SequenceRepository,
		) error {
			seq, err := seqRepo.Next(document.TypeQuotation)
			if err != nil {
				return err
			}
			q.Number = document.FormatNumber(document.TypeQuotation, seq)
			if err := quotRepo.Create(q); err != nil {
				return err
			}
			for _, item := range in.Items {
				qi := &entity.QuotationItem{
					ID:          uuid.New().String(),
					QuotationID: q.ID,
					ProductID:   item.ProductID,
					Quantity:    item.Quantity,
					UnitPrice:   item.UnitPrice,
				}
				if err := quotRepo.CreateItem(qi); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, q.ID)
}

// Get obtiene una cotización con sus líneas y, si existe, su orden de compra.
// Si está PENDING y ya venció, se marca EXPIRED antes de responder (expiración perezosa).
func (uc *QuotationUseCase) Get(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, err := uc.quotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.expireIfDue(q); err != nil {
		return nil, err
	}

	items, err := uc.quotRepo.GetItems(q.ID)
	if err != nil {
		return nil, err
	}
	q.Items = items

	bpo, err := uc.quotRepo.GetBuyerPO(q.ID)
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(q, bpo), nil
}

// List lista cotizaciones con filtros tipados.
func (uc *QuotationUseCase) List(ctx context.Context, in dto.ListQuotationsRequest) ([]dto.QuotationResponse, error) {
	in.DefaultPage()
	filter := repository.QuotationFilter{
		Status:   in.Status,
		Customer: in.Customer,
	}
	if in.From != "" {
		t, err := time.Parse(dateLayout, in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &t
	}
	if in.To != "" {
		t, err := time.Parse(dateLayout, in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.To = &t
	}

	list, err := uc.quotRepo.List(filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		if err := uc.expireIfDue(q); err != nil {
			return nil, err
		}
		out = append(out, *toQuotationResponse(q, nil))
	}
	return out, nil
}

// UpdateStatus aplica un cambio de estado manual (rechazar o expirar). La
// aceptación pasa por AcceptQuotationUseCase, que además genera la orden.
func (uc *QuotationUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateQuotationStatusRequest) error {
	q, err := uc.quotRepo.GetByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return domain.ErrNotFound
	}
	if err := uc.expireIfDue(q); err != nil {
		return err
	}
	// El guard va primero: sobre un documento ya terminal responde el error
	// preciso (ya aceptada / ya rechazada / bloqueada), no un 400 genérico.
	if err := document.GuardTransition(document.TypeQuotation, q.Status, in.Status); err != nil {
		return err
	}
	if in.Status == document.QuotationAccepted {
		return domain.ErrInvalidInput // aceptar tiene su propio endpoint (genera la orden)
	}
	return uc.quotRepo.UpdateStatus(id, in.Status)
}

// expireIfDue marca EXPIRED una cotización PENDING cuya vigencia ya venció.
// El marcado es condicional (solo si sigue PENDING): una aceptación que gane
// la carrera en la frontera del vencimiento no se pisa con EXPIRED.
func (uc *QuotationUseCase) expireIfDue(q *entity.Quotation) error {
	if q.Status != document.QuotationPending {
		return nil
	}
	today := time.Now().Truncate(24 * time.Hour)
	if !q.ValidUntil.Before(today) {
		return nil
	}
	expired, err := uc.quotRepo.ExpirePending(q.ID)
	if err != nil {
		return err
	}
	if expired {
		q.Status = document.QuotationExpired
		return nil
	}
	// Otra petición cambió el estado primero; reflejar lo que quedó en BD.
	fresh, err := uc.quotRepo.GetByID(q.ID)
	if err != nil {
		return err
	}
	if fresh != nil {
		q.Status = fresh.Status
	}
	return nil
}

// runWithNumberRetry reintenta una vez ante colisión de número (ErrConflict).
// El contador atómico hace la colisión prácticamente imposible; el UNIQUE de la
// columna number es el respaldo y el reintento toma el siguiente consecutivo.
func runWithNumberRetry(fn func() error) error {
	err := fn()
	if errors.Is(err, domain.ErrConflict) {
		return fn()
	}
	return err
}

func toQuotationResponse(q *entity.Quotation, bpo *entity.BuyerPurchaseOrder) *dto.QuotationResponse {
	resp := &dto.QuotationResponse{
		ID:           q.ID,
		Number:       q.Number,
		CustomerName: q.CustomerName,
		Status:       q.Status,
		ValidUntil:   q.ValidUntil.Format(dateLayout),
		Subtotal:     q.Subtotal,
		Items:        make([]dto.QuotationItemResponse, 0, len(q.Items)),
		CreatedAt:    q.CreatedAt.Format(time.RFC3339),
	}
	for _, it := range q.Items {
		resp.Items = append(resp.Items, dto.QuotationItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	if bpo != nil {
		resp.BuyerPO = toBuyerPOResponse(bpo)
	}
	return resp
}

func toBuyerPOResponse(bpo *entity.BuyerPurchaseOrder) *dto.BuyerPOResponse {
	return &dto.BuyerPOResponse{
		ID:          bpo.ID,
		Number:      bpo.Number,
		QuotationID: bpo.QuotationID,
		PODate:      bpo.PODate.Format(dateLayout),
		PDFURL:      bpo.PDFURL,
		ExternalURL: bpo.ExternalURL,
	}
}
