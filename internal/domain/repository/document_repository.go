package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ReceiptRepository define el puerto de persistencia para recepciones.
// Create guarda documento y líneas; MarkDone es la única vía para status=Done.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id string) (*entity.Receipt, error)
	// GetForUpdate bloquea la cabecera del documento (SELECT FOR UPDATE) para
	// que dos validaciones concurrentes no lean ambas un estado no terminal.
	GetForUpdate(ctx context.Context, id string) (*entity.Receipt, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Receipt, error)
	MarkDone(ctx context.Context, id string, validatedAt time.Time) error
}

// DeliveryRepository define el puerto de persistencia para órdenes de entrega.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.DeliveryOrder) error
	GetByID(ctx context.Context, id string) (*entity.DeliveryOrder, error)
	GetForUpdate(ctx context.Context, id string) (*entity.DeliveryOrder, error)
	List(ctx context.Context, limit, offset int) ([]*entity.DeliveryOrder, error)
	MarkDone(ctx context.Context, id string, validatedAt time.Time) error
}

// TransferRepository define el puerto de persistencia para traslados internos.
type TransferRepository interface {
	Create(ctx context.Context, transfer *entity.InternalTransfer) error
	GetByID(ctx context.Context, id string) (*entity.InternalTransfer, error)
	GetForUpdate(ctx context.Context, id string) (*entity.InternalTransfer, error)
	List(ctx context.Context, limit, offset int) ([]*entity.InternalTransfer, error)
	MarkDone(ctx context.Context, id string, completedAt time.Time) error
}

// AdjustmentRepository define el puerto de persistencia para ajustes.
// Los ajustes nacen Done; Create guarda documento y líneas ya procesadas.
type AdjustmentRepository interface {
	Create(ctx context.Context, adjustment *entity.StockAdjustment) error
	GetByID(ctx context.Context, id string) (*entity.StockAdjustment, error)
	List(ctx context.Context, limit, offset int) ([]*entity.StockAdjustment, error)
}

// TxRepos agrupa los repositorios atados a una misma transacción, tal como los
// entrega el TxRunner al motor de movimientos.
type TxRepos struct {
	Stock       StockLevelRepository
	Ledger      LedgerRepository
	Receipts    ReceiptRepository
	Deliveries  DeliveryRepository
	Transfers   TransferRepository
	Adjustments AdjustmentRepository
}
