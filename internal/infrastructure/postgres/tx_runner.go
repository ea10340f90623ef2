package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// txMaxAttempts intentos para una transacción que choca con deadlock o
// fallo de serialización antes de devolver el error.
const txMaxAttempts = 3

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con
// reintento acotado ante conflictos transitorios. El callback debe poder
// re-ejecutarse desde cero: cada intento le entrega repositorios atados a
// una transacción nueva.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Ante 40001/40P01 reintenta la transacción completa.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	var err error
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil || !isRetryableTxError(err) {
			return err
		}
	}
	return conflictAfterRetries(err)
}

// conflictAfterRetries envuelve domain.ErrConflict conservando la causa:
// la capa HTTP lo traduce como fallo transitorio (409) en vez de error interno.
func conflictAfterRetries(cause error) error {
	return fmt.Errorf("transacción abortada tras %d intentos: %w (causa: %v)", txMaxAttempts, domain.ErrConflict, cause)
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := repository.TxRepos{
		Stock:       NewStockLevelRepository(tx),
		Ledger:      NewLedgerRepository(tx),
		Receipts:    NewReceiptRepository(tx),
		Deliveries:  NewDeliveryRepository(tx),
		Transfers:   NewTransferRepository(tx),
		Adjustments: NewAdjustmentRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
