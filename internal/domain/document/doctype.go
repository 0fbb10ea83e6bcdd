package document

import "fmt"

// Type identifica un tipo de documento numerado.
type Type string

const (
	TypeQuotation     Type = "QT"  // cotización
	TypeBuyerPO       Type = "BPO" // orden de compra del comprador (al aceptar cotización)
	TypePurchaseOrder Type = "PO"  // orden de compra a proveedor
	TypeRetailSale    Type = "RS"  // venta al detal
	TypeExpense       Type = "EXP" // gastos: solo usa el guard de estados, sin consecutivo
)

// FormatNumber arma el consecutivo legible: <PREFIJO>-<n con ceros a 4 dígitos>.
// Ej: FormatNumber(TypeQuotation, 7) -> "QT-0007".
func FormatNumber(t Type, n int64) string {
	return fmt.Sprintf("%s-%04d", t, n)
}
