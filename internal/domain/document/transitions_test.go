package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/document"
)

// ──────────────────────────────────────────────────────────────────────────────
// CanTransition — grafo de transiciones por tipo de documento
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition_Cotizacion(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending a accepted", document.QuotationPending, document.QuotationAccepted, true},
		{"pending a rejected", document.QuotationPending, document.QuotationRejected, true},
		{"pending a expired", document.QuotationPending, document.QuotationExpired, true},
		{"accepted no tiene salidas", document.QuotationAccepted, document.QuotationRejected, false},
		{"rejected no tiene salidas", document.QuotationRejected, document.QuotationAccepted, false},
		{"expired no tiene salidas", document.QuotationExpired, document.QuotationPending, false},
		{"auto-transición prohibida", document.QuotationPending, document.QuotationPending, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := document.CanTransition(document.TypeQuotation, tc.from, tc.to)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanTransition_OrdenDeCompra(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending a dispatched", document.PurchasePending, document.PurchaseDispatched, true},
		{"pending a cancelled", document.PurchasePending, document.PurchaseCancelled, true},
		{"dispatched a received", document.PurchaseDispatched, document.PurchaseReceived, true},
		{"pending directo a received prohibido", document.PurchasePending, document.PurchaseReceived, false},
		{"dispatched a cancelled prohibido", document.PurchaseDispatched, document.PurchaseCancelled, false},
		{"received es terminal", document.PurchaseReceived, document.PurchaseCancelled, false},
		{"cancelled es terminal", document.PurchaseCancelled, document.PurchasePending, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := document.CanTransition(document.TypePurchaseOrder, tc.from, tc.to)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanTransition_Gasto(t *testing.T) {
	assert.True(t, document.CanTransition(document.TypeExpense, document.ExpensePending, document.ExpenseApproved))
	assert.True(t, document.CanTransition(document.TypeExpense, document.ExpensePending, document.ExpenseRejected))
	assert.False(t, document.CanTransition(document.TypeExpense, document.ExpenseApproved, document.ExpenseRejected),
		"un gasto aprobado queda bloqueado")
	assert.False(t, document.CanTransition(document.TypeExpense, document.ExpenseRejected, document.ExpensePending))
}

func TestCanTransition_EstadoDesconocido(t *testing.T) {
	assert.False(t, document.CanTransition(document.TypeQuotation, "GARBAGE", document.QuotationAccepted))
	assert.False(t, document.CanTransition(document.Type("XX"), document.QuotationPending, document.QuotationAccepted))
}

// ──────────────────────────────────────────────────────────────────────────────
// GuardTransition — errores de dominio precisos para el perdedor de una carrera
// ──────────────────────────────────────────────────────────────────────────────

func TestGuardTransition_TransicionLegal(t *testing.T) {
	err := document.GuardTransition(document.TypeQuotation, document.QuotationPending, document.QuotationAccepted)
	assert.NoError(t, err)
}

func TestGuardTransition_YaAceptada(t *testing.T) {
	err := document.GuardTransition(document.TypeQuotation, document.QuotationAccepted, document.QuotationAccepted)
	assert.ErrorIs(t, err, domain.ErrAlreadyAccepted,
		"aceptar una cotización ya aceptada debe indicar ErrAlreadyAccepted")
}

func TestGuardTransition_YaRechazada(t *testing.T) {
	err := document.GuardTransition(document.TypeQuotation, document.QuotationRejected, document.QuotationAccepted)
	assert.ErrorIs(t, err, domain.ErrAlreadyRejected)
}

func TestGuardTransition_ExpiradaBloqueada(t *testing.T) {
	err := document.GuardTransition(document.TypeQuotation, document.QuotationExpired, document.QuotationAccepted)
	assert.ErrorIs(t, err, domain.ErrLocked,
		"una cotización expirada no admite ninguna salida")
}

func TestGuardTransition_AristaIlegalConSalidas(t *testing.T) {
	// PENDING tiene salidas, pero PENDING→RECEIVED no es una de ellas.
	err := document.GuardTransition(document.TypePurchaseOrder, document.PurchasePending, document.PurchaseReceived)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestGuardTransition_GastoAprobadoBloqueado(t *testing.T) {
	err := document.GuardTransition(document.TypeExpense, document.ExpenseApproved, document.ExpenseRejected)
	assert.ErrorIs(t, err, domain.ErrLocked)
}
