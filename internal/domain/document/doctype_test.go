package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain/document"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "QT-0001", document.FormatNumber(document.TypeQuotation, 1))
	assert.Equal(t, "BPO-0042", document.FormatNumber(document.TypeBuyerPO, 42))
	assert.Equal(t, "PO-0999", document.FormatNumber(document.TypePurchaseOrder, 999))
	assert.Equal(t, "RS-1234", document.FormatNumber(document.TypeRetailSale, 1234))
}

func TestFormatNumber_MasDeCuatroDigitos(t *testing.T) {
	// El padding es mínimo a 4 dígitos; el consecutivo nunca se trunca.
	assert.Equal(t, "RS-12345", document.FormatNumber(document.TypeRetailSale, 12345))
}
