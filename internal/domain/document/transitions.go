package document

import "github.com/jhoicas/Gestion-api/internal/domain"

// Estados de cotización.
const (
	QuotationPending  = "PENDING"
	QuotationAccepted = "ACCEPTED"
	QuotationRejected = "REJECTED"
	QuotationExpired  = "EXPIRED"
)

// Estados de orden de compra a proveedor.
const (
	PurchasePending    = "PENDING"
	PurchaseDispatched = "DISPATCHED"
	PurchaseReceived   = "RECEIVED"
	PurchaseCancelled  = "CANCELLED"
)

// Estados de gasto.
const (
	ExpensePending  = "PENDING"
	ExpenseApproved = "APPROVED"
	ExpenseRejected = "REJECTED"
)

// transitions codifica, por tipo de documento, el grafo dirigido de transiciones legales.
var transitions = map[Type]map[string][]string{
	TypeQuotation: {
		QuotationPending: {QuotationAccepted, QuotationRejected, QuotationExpired},
	},
	TypePurchaseOrder: {
		PurchasePending:    {PurchaseDispatched, PurchaseCancelled},
		PurchaseDispatched: {PurchaseReceived},
	},
	// Los gastos no llevan consecutivo pero comparten el guard de estados.
	TypeExpense: {
		ExpensePending: {ExpenseApproved, ExpenseRejected},
	},
}

// CanTransition responde si el cambio de estado solicitado es legal para el tipo de documento.
// Las auto-transiciones y cualquier arista fuera del grafo devuelven false.
func CanTransition(t Type, from, to string) bool {
	allowed, ok := transitions[t][from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// GuardTransition valida la transición y devuelve el error de dominio preciso:
// ErrAlreadyAccepted / ErrAlreadyRejected si el documento ya está en ese estado
// terminal, ErrLocked si el estado actual no admite ninguna salida, y
// ErrInvalidTransition para cualquier otra arista ilegal.
func GuardTransition(t Type, from, to string) error {
	if CanTransition(t, from, to) {
		return nil
	}
	switch {
	case t == TypeQuotation && from == QuotationAccepted:
		return domain.ErrAlreadyAccepted
	case t == TypeQuotation && from == QuotationRejected:
		return domain.ErrAlreadyRejected
	}
	if _, hasExit := transitions[t][from]; !hasExit {
		return domain.ErrLocked
	}
	return domain.ErrInvalidTransition
}
