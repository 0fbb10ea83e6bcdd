package purchase

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

var percentTotal = decimal.NewFromInt(100)

// PurchaseUseCase casos de uso de órdenes de compra a proveedor: creación
// numerada con inversiones, consulta, listado y cambios de estado manuales.
type PurchaseUseCase struct {
	poRepo       repository.PurchaseOrderRepository
	invRepo      repository.InventoryRepository
	investorRepo repository.InvestorRepository
	txRunner     TxRunner
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	poRepo repository.PurchaseOrderRepository,
	invRepo repository.InventoryRepository,
	investorRepo repository.InvestorRepository,
	txRunner TxRunner,
) *PurchaseUseCase {
	return &PurchaseUseCase{poRepo: poRepo, invRepo: invRepo, investorRepo: investorRepo, txRunner: txRunner}
}

// Create crea una orden PENDING con consecutivo PO-nnnn. Si lleva inversiones,
// la suma de aportes debe igualar el total de la orden y los porcentajes de
// utilidad deben sumar exactamente 100.
func (uc *PurchaseUseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	orderDate := time.Now()
	if in.OrderDate != "" {
		var err error
		orderDate, err = time.Parse(dateLayout, in.OrderDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validar líneas y calcular el total fuera de la tx (solo lectura).
	total := decimal.Zero
	for i := range in.Items {
		item := &in.Items[i]
		if !item.Quantity.GreaterThan(decimal.Zero) || item.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.invRepo.GetByID(item.InventoryItemID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		total = total.Add(item.Quantity.Mul(item.UnitCost))
	}

	// Invariante de financiación: Σ aportes == total y Σ porcentajes == 100.
	if len(in.Investments) > 0 {
		sumAmount := decimal.Zero
		sumPercent := decimal.Zero
		for _, inv := range in.Investments {
			if !inv.Amount.GreaterThan(decimal.Zero) || inv.ProfitPercent.LessThan(decimal.Zero) {
				return nil, domain.ErrInvalidInput
			}
			investor, err := uc.investorRepo.GetByID(inv.InvestorID)
			if err != nil {
				return nil, err
			}
			if investor == nil {
				return nil, domain.ErrNotFound
			}
			sumAmount = sumAmount.Add(inv.Amount)
			sumPercent = sumPercent.Add(inv.ProfitPercent)
		}
		if !sumAmount.Equal(total) || !sumPercent.Equal(percentTotal) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	po := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		VendorName: in.VendorName,
		Status:     document.PurchasePending,
		OrderDate:  orderDate,
		Total:      total,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := runWithNumberRetry(func() error {
		return uc.txRunner.RunPurchase(ctx, func(
			poRepo repository.PurchaseOrderRepository,
			_ repository.InventoryRepository,
			seqRepo repository.SequenceRepository,
		) error {
			seq, err := seqRepo.Next(document.TypePurchaseOrder)
			if err != nil {
				return err
			}
			po.Number = document.FormatNumber(document.TypePurchaseOrder, seq)
			if err := poRepo.Create(po); err != nil {
				return err
			}
			for _, item := range in.Items {
				poi := &entity.PurchaseOrderItem{
					ID:              uuid.New().String(),
					PurchaseOrderID: po.ID,
					InventoryItemID: item.InventoryItemID,
					Quantity:        item.Quantity,
					UnitCost:        item.UnitCost,
				}
				if err := poRepo.CreateItem(poi); err != nil {
					return err
				}
			}
			for _, inv := range in.Investments {
				investment := &entity.Investment{
					ID:              uuid.New().String(),
					PurchaseOrderID: po.ID,
					InvestorID:      inv.InvestorID,
					Amount:          inv.Amount,
					ProfitPercent:   inv.ProfitPercent,
					CreatedAt:       now,
				}
				if err := poRepo.CreateInvestment(investment); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, po.ID)
}

// Get obtiene una orden con sus líneas e inversiones.
func (uc *PurchaseUseCase) Get(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.poRepo.GetItems(po.ID)
	if err != nil {
		return nil, err
	}
	invests, err := uc.poRepo.GetInvestments(po.ID)
	if err != nil {
		return nil, err
	}
	po.Items = items
	po.Invests = invests
	return toPurchaseOrderResponse(po), nil
}

// List lista órdenes con filtros tipados.
func (uc *PurchaseUseCase) List(ctx context.Context, in dto.ListPurchaseOrdersRequest) ([]dto.PurchaseOrderResponse, error) {
	in.DefaultPage()
	filter := repository.PurchaseOrderFilter{
		Status: in.Status,
		Vendor: in.Vendor,
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

	list, err := uc.poRepo.List(filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, po := range list {
		out = append(out, *toPurchaseOrderResponse(po))
	}
	return out, nil
}

// UpdateStatus aplica un cambio de estado manual (despachar o cancelar). La
// recepción pasa por ReceiveOrderUseCase, que además incrementa inventario.
func (uc *PurchaseUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdatePurchaseOrderStatusRequest) error {
	if in.Status == document.PurchaseReceived {
		return domain.ErrInvalidInput // recibir tiene su propio endpoint (acredita inventario)
	}
	po, err := uc.poRepo.GetByID(id)
	if err != nil {
		return err
	}
	if po == nil {
		return domain.ErrNotFound
	}
	if err := document.GuardTransition(document.TypePurchaseOrder, po.Status, in.Status); err != nil {
		return err
	}
	return uc.poRepo.UpdateStatus(id, in.Status)
}

// runWithNumberRetry reintenta una vez ante colisión de número (ErrConflict).
func runWithNumberRetry(fn func() error) error {
	err := fn()
	if errors.Is(err, domain.ErrConflict) {
		return fn()
	}
	return err
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:          po.ID,
		Number:      po.Number,
		VendorName:  po.VendorName,
		Status:      po.Status,
		OrderDate:   po.OrderDate.Format(dateLayout),
		Total:       po.Total,
		Items:       make([]dto.PurchaseOrderItemResponse, 0, len(po.Items)),
		Investments: make([]dto.InvestmentResponse, 0, len(po.Invests)),
	}
	if po.ReceivedAt != nil {
		resp.ReceivedAt = po.ReceivedAt.Format(time.RFC3339)
	}
	for _, it := range po.Items {
		resp.Items = append(resp.Items, dto.PurchaseOrderItemResponse{
			ID:              it.ID,
			InventoryItemID: it.InventoryItemID,
			Quantity:        it.Quantity,
			UnitCost:        it.UnitCost,
		})
	}
	for _, inv := range po.Invests {
		resp.Investments = append(resp.Investments, dto.InvestmentResponse{
			ID:            inv.ID,
			InvestorID:    inv.InvestorID,
			Amount:        inv.Amount,
			ProfitPercent: inv.ProfitPercent,
		})
	}
	return resp
}
