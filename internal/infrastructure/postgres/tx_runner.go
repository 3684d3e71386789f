package postgres

import (
	"context"
	"fmt"

	"github.com/hostaly/hostaly-api/internal/application/inventory"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El Rollback diferido garantiza que ninguna salida no confirmada deje
// cantidad mutada sin asiento, ni asiento sin cantidad.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInventoryRepository(tx), NewMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunStock inicia una transacción con los repos del flujo grueso por lotes.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	stockRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInventoryRepository(tx), NewStockMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
