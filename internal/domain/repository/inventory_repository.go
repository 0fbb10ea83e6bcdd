package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// InventoryFilter filtros tipados para listar inventario (un campo por filtro soportado).
type InventoryFilter struct {
	Search  string // busca en product_code y name
	LowOnly bool   // solo productos en o bajo el umbral mínimo
}

// InventoryRepository define el puerto de persistencia para InventoryItem.
// DecrementStock e IncrementStock son las únicas mutaciones de cantidad que
// usan los workflows; DecrementStock debe ser un decremento condicional
// atómico (falla con ErrInsufficientStock si la cantidad no alcanza).
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetByProductCode(code string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
	List(filter InventoryFilter, limit, offset int) ([]*entity.InventoryItem, error)

	// DecrementStock resta qty solo si quantity >= qty (una sola sentencia condicional).
	// Cero filas afectadas -> domain.ErrInsufficientStock.
	DecrementStock(id string, qty decimal.Decimal) error
	// IncrementStock suma qty a la existencia del producto.
	IncrementStock(id string, qty decimal.Decimal) error
}
