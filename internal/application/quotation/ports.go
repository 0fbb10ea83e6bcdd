package quotation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el consecutivo,
// la cotización y la orden de compra generada al aceptar.
type TxRunner interface {
	RunQuotation(ctx context.Context, fn func(
		quotRepo repository.QuotationRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

// QuotationItemForPDF línea enriquecida con los datos del producto para la
// representación gráfica de la cotización.
type QuotationItemForPDF struct {
	ProductCode string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// PDFGenerator genera la representación gráfica de una cotización.
type PDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, q *entity.Quotation, items []QuotationItemForPDF) ([]byte, error)
}

// Notifier recibe los eventos de negocio que disparan notificaciones push.
// Se invoca después del commit; los errores de envío no afectan la operación.
type Notifier interface {
	QuotationAccepted(quotationNumber, bpoNumber, customerName string)
}
