package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// CreateSaleUseCase crea una venta al detal y descuenta el inventario en una
// sola transacción: si alguna línea no tiene stock suficiente, no se descuenta
// nada y la venta no existe.
type CreateSaleUseCase struct {
	txRunner TxRunner
	notifier Notifier
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner, notifier Notifier) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, notifier: notifier}
}

// CreateSale valida las líneas, calcula los totales con precisión decimal y
// persiste venta + decrementos de stock con consecutivo RS-nnnn.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateRetailSaleRequest) (*dto.RetailSaleResponse, error) {
	for i := range in.Items {
		item := &in.Items[i]
		if !item.Quantity.GreaterThan(decimal.Zero) || item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Discount.LessThan(decimal.Zero) || in.Tax.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// Subtotal = Σ (cantidad × precio); Total = Subtotal - Descuento + Impuesto.
	subtotal := decimal.Zero
	for _, item := range in.Items {
		subtotal = subtotal.Add(item.Quantity.Mul(item.UnitPrice))
	}
	total := subtotal.Sub(in.Discount).Add(in.Tax)
	if total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.RetailSale{
		ID:            uuid.New().String(),
		SaleDate:      now,
		CustomerName:  in.CustomerName,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      subtotal,
		Discount:      in.Discount,
		Tax:           in.Tax,
		Total:         total,
		CreatedBy:     userID,
		CreatedAt:     now,
	}

	var lowStock []*entity.InventoryItem
	var saleItems []*entity.RetailSaleItem
	err := runWithNumberRetry(func() error {
		lowStock = lowStock[:0]
		saleItems = saleItems[:0]
		return uc.txRunner.RunSale(ctx, func(
			saleRepo repository.RetailSaleRepository,
			invRepo repository.InventoryRepository,
			seqRepo repository.SequenceRepository,
		) error {
			seq, err := seqRepo.Next(document.TypeRetailSale)
			if err != nil {
				return err
			}
			sale.Number = document.FormatNumber(document.TypeRetailSale, seq)
			if err := saleRepo.Create(sale); err != nil {
				return err
			}

			for _, item := range in.Items {
				product, err := invRepo.GetByID(item.InventoryItemID)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				// Decremento condicional: cualquier línea sin stock revierte la venta completa.
				if err := invRepo.DecrementStock(item.InventoryItemID, item.Quantity); err != nil {
					if errors.Is(err, domain.ErrInsufficientStock) {
						return fmt.Errorf("%w: producto %s (%s)", domain.ErrInsufficientStock, product.ProductCode, product.Name)
					}
					return err
				}
				si := &entity.RetailSaleItem{
					ID:              uuid.New().String(),
					RetailSaleID:    sale.ID,
					InventoryItemID: item.InventoryItemID,
					Quantity:        item.Quantity,
					UnitPrice:       item.UnitPrice,
				}
				if err := saleRepo.CreateItem(si); err != nil {
					return err
				}
				saleItems = append(saleItems, si)

				// Umbral de alerta evaluado con la cantidad ya descontada.
				remaining := product.Quantity.Sub(item.Quantity)
				if remaining.LessThanOrEqual(product.MinStock) {
					after := *product
					after.Quantity = remaining
					lowStock = append(lowStock, &after)
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// Post-commit: notificaciones. Nunca afectan la venta ya confirmada.
	if uc.notifier != nil {
		uc.notifier.SaleCreated(sale.Number, sale.Total.StringFixed(2))
		for _, p := range lowStock {
			uc.notifier.LowStock(p.ProductCode, p.Name, p.Quantity.String())
		}
	}

	return toRetailSaleResponse(sale, saleItems), nil
}

// runWithNumberRetry reintenta una vez ante colisión de número (ErrConflict).
func runWithNumberRetry(fn func() error) error {
	err := fn()
	if errors.Is(err, domain.ErrConflict) {
		return fn()
	}
	return err
}
