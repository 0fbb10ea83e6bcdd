package purchase

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La creación agrupa consecutivo, orden e
// inversiones; la recepción agrupa el cambio de estado y los incrementos de
// inventario.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		poRepo repository.PurchaseOrderRepository,
		invRepo repository.InventoryRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

// Notifier recibe los eventos de negocio que disparan notificaciones push.
// Se invoca después del commit; los errores de envío no afectan la operación.
type Notifier interface {
	OrderReceived(orderNumber, vendorName string)
}
