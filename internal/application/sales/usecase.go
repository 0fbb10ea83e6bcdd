package sales

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// SalesUseCase consultas de ventas al detal (la creación vive en CreateSaleUseCase).
type SalesUseCase struct {
	saleRepo repository.RetailSaleRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(saleRepo repository.RetailSaleRepository) *SalesUseCase {
	return &SalesUseCase{saleRepo: saleRepo}
}

// Get obtiene una venta con sus líneas.
func (uc *SalesUseCase) Get(ctx context.Context, id string) (*dto.RetailSaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(sale.ID)
	if err != nil {
		return nil, err
	}
	return toRetailSaleResponse(sale, items), nil
}

// List lista ventas con filtros tipados.
func (uc *SalesUseCase) List(ctx context.Context, in dto.ListRetailSalesRequest) ([]dto.RetailSaleResponse, error) {
	in.DefaultPage()
	filter := repository.RetailSaleFilter{PaymentMethod: in.PaymentMethod}
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

	list, err := uc.saleRepo.List(filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RetailSaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toRetailSaleResponse(s, nil))
	}
	return out, nil
}

func toRetailSaleResponse(s *entity.RetailSale, items []*entity.RetailSaleItem) *dto.RetailSaleResponse {
	resp := &dto.RetailSaleResponse{
		ID:            s.ID,
		Number:        s.Number,
		SaleDate:      s.SaleDate.Format(time.RFC3339),
		CustomerName:  s.CustomerName,
		PaymentMethod: s.PaymentMethod,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Tax:           s.Tax,
		Total:         s.Total,
		Items:         make([]dto.RetailSaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.RetailSaleItemResponse{
			ID:              it.ID,
			InventoryItemID: it.InventoryItemID,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
		})
	}
	return resp
}
