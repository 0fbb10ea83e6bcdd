package purchase

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ReceiveOrderUseCase orquesta la recepción de una orden despachada: marca
// RECEIVED y suma al inventario la cantidad de cada línea, todo en una sola
// transacción. De dos recepciones concurrentes solo una incrementa stock.
type ReceiveOrderUseCase struct {
	purchaseUC *PurchaseUseCase
	poRepo     repository.PurchaseOrderRepository
	txRunner   TxRunner
	notifier   Notifier
}

// NewReceiveOrderUseCase construye el orquestador.
func NewReceiveOrderUseCase(
	purchaseUC *PurchaseUseCase,
	poRepo repository.PurchaseOrderRepository,
	txRunner TxRunner,
	notifier Notifier,
) *ReceiveOrderUseCase {
	return &ReceiveOrderUseCase{purchaseUC: purchaseUC, poRepo: poRepo, txRunner: txRunner, notifier: notifier}
}

// Receive valida la transición DISPATCHED→RECEIVED, marca condicionalmente y
// acredita el inventario por cada línea de la orden.
func (uc *ReceiveOrderUseCase) Receive(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	if err := document.GuardTransition(document.TypePurchaseOrder, po.Status, document.PurchaseReceived); err != nil {
		return nil, err
	}

	receivedAt := time.Now()
	err = uc.txRunner.RunPurchase(ctx, func(
		poRepo repository.PurchaseOrderRepository,
		invRepo repository.InventoryRepository,
		_ repository.SequenceRepository,
	) error {
		// Marcado condicional: solo gana quien encuentra la orden DISPATCHED.
		won, err := poRepo.MarkReceived(id, document.PurchaseDispatched, receivedAt)
		if err != nil {
			return err
		}
		if !won {
			// Otro request cambió el estado primero: releer para el error preciso.
			current, err := poRepo.GetByID(id)
			if err != nil {
				return err
			}
			if current == nil {
				return domain.ErrNotFound
			}
			return document.GuardTransition(document.TypePurchaseOrder, current.Status, document.PurchaseReceived)
		}

		items, err := poRepo.GetItems(id)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := invRepo.IncrementStock(item.InventoryItemID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Post-commit: notificar. El envío nunca afecta la recepción ya confirmada.
	if uc.notifier != nil {
		uc.notifier.OrderReceived(po.Number, po.VendorName)
	}
	return uc.purchaseUC.Get(ctx, id)
}
