package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gestion-api/internal/application/purchase"
	"github.com/jhoicas/Gestion-api/internal/application/quotation"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de los workflows.
var _ quotation.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)
var _ purchase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQuotation inicia una transacción con los repos del workflow de aceptación
// de cotización (marcar ACCEPTED + consecutivo + BPO) y hace Commit o Rollback.
func (r *TxRunner) RunQuotation(ctx context.Context, fn func(
	quotRepo repository.QuotationRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	quotRepo := NewQuotationRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(quotRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con los repos del workflow de venta al detal
// (consecutivo + venta + decremento condicional de inventario por línea).
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.RetailSaleRepository,
	invRepo repository.InventoryRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewRetailSaleRepository(tx)
	invRepo := NewInventoryRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(saleRepo, invRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchase inicia una transacción con los repos de órdenes de compra a
// proveedor: creación (consecutivo + orden + inversiones) y recepción
// (RECEIVED + incrementos de inventario).
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	poRepo repository.PurchaseOrderRepository,
	invRepo repository.InventoryRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	poRepo := NewPurchaseOrderRepository(tx)
	invRepo := NewInventoryRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(poRepo, invRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
