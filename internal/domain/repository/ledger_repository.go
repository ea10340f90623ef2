package repository

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// LedgerFilter filtros para consultar el libro mayor de stock.
type LedgerFilter struct {
	ProductID    string
	WarehouseID  string
	LocationID   string
	DocumentType string
	DocumentID   string
}

// LedgerRepository define el puerto del libro mayor de stock: solo append y
// lectura, nunca update ni delete.
type LedgerRepository interface {
	Append(ctx context.Context, entry *entity.StockLedgerEntry) error
	// List devuelve asientos del más reciente al más antiguo.
	List(ctx context.Context, filter LedgerFilter, limit, offset int) ([]*entity.StockLedgerEntry, error)
	// SumByKey suma los deltas de una llave; soporte de la verificación de
	// conciliación contra StockLevel.Quantity.
	SumByKey(ctx context.Context, productID, warehouseID string) (int64, error)
}
