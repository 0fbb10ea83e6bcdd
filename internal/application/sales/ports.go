package sales

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el consecutivo, la venta y los
// decrementos de inventario se confirmen o reviertan juntos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.RetailSaleRepository,
		invRepo repository.InventoryRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

// Notifier recibe los eventos de negocio que disparan notificaciones push.
// Se invoca después del commit; los errores de envío no afectan la venta.
type Notifier interface {
	SaleCreated(saleNumber, total string)
	LowStock(productCode, productName, quantity string)
}
