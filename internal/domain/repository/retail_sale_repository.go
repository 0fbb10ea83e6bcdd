package repository

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// RetailSaleFilter filtros tipados para listar ventas.
type RetailSaleFilter struct {
	PaymentMethod string
	From          *time.Time
	To            *time.Time
}

// RetailSaleRepository define el puerto de persistencia para RetailSale.
type RetailSaleRepository interface {
	Create(sale *entity.RetailSale) error
	CreateItem(item *entity.RetailSaleItem) error
	GetByID(id string) (*entity.RetailSale, error)
	GetItems(saleID string) ([]*entity.RetailSaleItem, error)
	List(filter RetailSaleFilter, limit, offset int) ([]*entity.RetailSale, error)
}
