package repository

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// PurchaseOrderFilter filtros tipados para listar órdenes de compra.
type PurchaseOrderFilter struct {
	Status string
	Vendor string
	From   *time.Time
	To     *time.Time
}

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder,
// sus líneas y las inversiones asociadas.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) error
	CreateItem(item *entity.PurchaseOrderItem) error
	CreateInvestment(inv *entity.Investment) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetItems(purchaseOrderID string) ([]*entity.PurchaseOrderItem, error)
	GetInvestments(purchaseOrderID string) ([]*entity.Investment, error)
	List(filter PurchaseOrderFilter, limit, offset int) ([]*entity.PurchaseOrder, error)
	UpdateStatus(id, status string) error

	// MarkReceived pasa la orden de from a RECEIVED con fecha de recepción en
	// una sola sentencia condicional. Devuelve false si ninguna fila cambió.
	MarkReceived(id, from string, at time.Time) (bool, error)
}
