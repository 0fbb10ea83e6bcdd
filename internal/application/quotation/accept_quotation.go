package quotation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// AcceptQuotationUseCase orquesta la aceptación de una cotización: marca
// ACCEPTED y genera la orden de compra del comprador (BPO-nnnn) en una sola
// transacción. De dos aceptaciones concurrentes solo una gana; la otra recibe
// el error de dominio preciso según el estado en que quedó el documento.
type AcceptQuotationUseCase struct {
	quotUC   *QuotationUseCase
	quotRepo repository.QuotationRepository
	txRunner TxRunner
	notifier Notifier
}

// NewAcceptQuotationUseCase construye el orquestador.
func NewAcceptQuotationUseCase(
	quotUC *QuotationUseCase,
	quotRepo repository.QuotationRepository,
	txRunner TxRunner,
	notifier Notifier,
) *AcceptQuotationUseCase {
	return &AcceptQuotationUseCase{quotUC: quotUC, quotRepo: quotRepo, txRunner: txRunner, notifier: notifier}
}

// Accept valida la transición, marca ACCEPTED condicionalmente y crea la orden
// de compra vinculada, todo dentro de la misma transacción.
func (uc *AcceptQuotationUseCase) Accept(ctx context.Context, id string, in dto.AcceptQuotationRequest) (*dto.AcceptQuotationResponse, error) {
	q, err := uc.quotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	// Expiración perezosa antes de validar: una cotización vencida no se acepta.
	if err := uc.quotUC.expireIfDue(q); err != nil {
		return nil, err
	}
	if err := document.GuardTransition(document.TypeQuotation, q.Status, document.QuotationAccepted); err != nil {
		return nil, err
	}

	poDate := time.Now()
	if in.PODate != "" {
		poDate, err = time.Parse(dateLayout, in.PODate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	var bpo *entity.BuyerPurchaseOrder
	err = runWithNumberRetry(func() error {
		return uc.txRunner.RunQuotation(ctx, func(
			quotRepo repository.QuotationRepository,
			seqRepo repository.SequenceRepository,
		) error {
			// Marcado condicional: solo gana quien encuentra la cotización PENDING.
			won, err := quotRepo.AcceptPending(id)
			if err != nil {
				return err
			}
			if !won {
				// Otro request cambió el estado primero: releer para devolver
				// el error preciso (ya aceptada, rechazada o bloqueada).
				current, err := quotRepo.GetByID(id)
				if err != nil {
					return err
				}
				if current == nil {
					return domain.ErrNotFound
				}
				return document.GuardTransition(document.TypeQuotation, current.Status, document.QuotationAccepted)
			}

			seq, err := seqRepo.Next(document.TypeBuyerPO)
			if err != nil {
				return err
			}
			bpo = &entity.BuyerPurchaseOrder{
				ID:          uuid.New().String(),
				Number:      document.FormatNumber(document.TypeBuyerPO, seq),
				QuotationID: id,
				PODate:      poDate,
				PDFURL:      in.PDFURL,
				ExternalURL: in.ExternalURL,
				CreatedAt:   time.Now(),
			}
			return quotRepo.CreateBuyerPO(bpo)
		})
	})
	if err != nil {
		return nil, err
	}

	// Post-commit: notificar. El envío nunca afecta la aceptación ya confirmada.
	if uc.notifier != nil {
		uc.notifier.QuotationAccepted(q.Number, bpo.Number, q.CustomerName)
	}

	quotation, err := uc.quotUC.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.AcceptQuotationResponse{
		Quotation: *quotation,
		BuyerPO:   *toBuyerPOResponse(bpo),
	}, nil
}
