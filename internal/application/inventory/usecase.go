package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// InventoryUseCase casos de uso de inventario: CRUD de productos, listado con
// filtros y ajuste manual de existencias.
type InventoryUseCase struct {
	invRepo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(invRepo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{invRepo: invRepo}
}

// Create registra un producto nuevo. Devuelve ErrDuplicate si el código ya existe.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.Quantity.LessThan(decimal.Zero) || in.PurchasePrice.LessThan(decimal.Zero) || in.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:            uuid.New().String(),
		ProductCode:   in.ProductCode,
		Name:          in.Name,
		Description:   in.Description,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		MinStock:      in.MinStock,
		MaxStock:      in.MaxStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.invRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Get obtiene un producto por ID.
func (uc *InventoryUseCase) Get(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update actualiza los datos del producto. La cantidad no se toca por aquí:
// se mueve vía workflows o vía AdjustStock.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Description != "" {
		item.Description = in.Description
	}
	if in.PurchasePrice.GreaterThan(decimal.Zero) {
		item.PurchasePrice = in.PurchasePrice
	}
	if in.SalePrice.GreaterThan(decimal.Zero) {
		item.SalePrice = in.SalePrice
	}
	if in.MinStock.GreaterThan(decimal.Zero) {
		item.MinStock = in.MinStock
	}
	if in.MaxStock.GreaterThan(decimal.Zero) {
		item.MaxStock = in.MaxStock
	}
	item.UpdatedAt = time.Now()
	if err := uc.invRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un producto.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.invRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.invRepo.Delete(id)
}

// List lista productos con filtros tipados.
func (uc *InventoryUseCase) List(ctx context.Context, in dto.ListInventoryRequest) ([]dto.InventoryItemResponse, error) {
	in.DefaultPage()
	filter := repository.InventoryFilter{Search: in.Search, LowOnly: in.LowOnly}
	list, err := uc.invRepo.List(filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

// AdjustStock aplica un ajuste manual: delta positivo acredita, negativo
// descuenta condicionalmente (nunca deja la existencia en negativo).
func (uc *InventoryUseCase) AdjustStock(ctx context.Context, id string, in dto.AdjustStockRequest) (*dto.InventoryItemResponse, error) {
	if in.Delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Delta.GreaterThan(decimal.Zero) {
		err = uc.invRepo.IncrementStock(id, in.Delta)
	} else {
		err = uc.invRepo.DecrementStock(id, in.Delta.Neg())
	}
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

func toItemResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:            i.ID,
		ProductCode:   i.ProductCode,
		Name:          i.Name,
		Description:   i.Description,
		Quantity:      i.Quantity,
		PurchasePrice: i.PurchasePrice,
		SalePrice:     i.SalePrice,
		MinStock:      i.MinStock,
		MaxStock:      i.MaxStock,
		LowStock:      i.IsLowStock(),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
