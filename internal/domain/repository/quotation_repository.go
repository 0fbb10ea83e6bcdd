package repository

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// QuotationFilter filtros tipados para listar cotizaciones.
type QuotationFilter struct {
	Status   string
	Customer string
	From     *time.Time
	To       *time.Time
}

// QuotationRepository define el puerto de persistencia para Quotation y su
// orden de compra de comprador (vínculo 1:1 creado por el workflow de aceptación).
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	CreateItem(item *entity.QuotationItem) error
	GetByID(id string) (*entity.Quotation, error)
	GetItems(quotationID string) ([]*entity.QuotationItem, error)
	List(filter QuotationFilter, limit, offset int) ([]*entity.Quotation, error)
	UpdateStatus(id, status string) error

	// AcceptPending pasa la cotización de PENDING a ACCEPTED en una sola
	// sentencia condicional. Devuelve false si ninguna fila cambió (el
	// documento ya no estaba PENDING): el caller decide el error preciso.
	AcceptPending(id string) (bool, error)

	// ExpirePending pasa la cotización de PENDING a EXPIRED con la misma
	// sentencia condicional. Devuelve false si ninguna fila cambió: una
	// aceptación concurrente ganó la carrera y no debe pisarse.
	ExpirePending(id string) (bool, error)

	CreateBuyerPO(po *entity.BuyerPurchaseOrder) error
	GetBuyerPO(quotationID string) (*entity.BuyerPurchaseOrder, error)
}
