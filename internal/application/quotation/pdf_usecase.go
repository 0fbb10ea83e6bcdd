package quotation

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica de una cotización.
type PDFUseCase struct {
	quotRepo  repository.QuotationRepository
	invRepo   repository.InventoryRepository
	generator PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	quotRepo repository.QuotationRepository,
	invRepo repository.InventoryRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{quotRepo: quotRepo, invRepo: invRepo, generator: generator}
}

// GeneratePDF arma las líneas enriquecidas con los datos del producto y delega
// en el generador. Devuelve los bytes del documento y el número de cotización
// (para el nombre del archivo).
func (uc *PDFUseCase) GeneratePDF(ctx context.Context, quotationID string) ([]byte, string, error) {
	q, err := uc.quotRepo.GetByID(quotationID)
	if err != nil {
		return nil, "", err
	}
	if q == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.quotRepo.GetItems(q.ID)
	if err != nil {
		return nil, "", err
	}

	lines := make([]QuotationItemForPDF, 0, len(items))
	for _, it := range items {
		line := QuotationItemForPDF{
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Quantity.Mul(it.UnitPrice),
		}
		product, err := uc.invRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, "", err
		}
		if product != nil {
			line.ProductCode = product.ProductCode
			line.ProductName = product.Name
		}
		lines = append(lines, line)
	}

	pdfBytes, err := uc.generator.GenerateQuotationPDF(ctx, q, lines)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, q.Number, nil
}
