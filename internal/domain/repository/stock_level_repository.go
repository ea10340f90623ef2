package repository

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// StockLevelFilter filtros para listar niveles de stock.
type StockLevelFilter struct {
	ProductID   string
	WarehouseID string
	LocationID  string
	CategoryID  string
}

// StockLevelRepository define el puerto para consultar/actualizar stock por
// bodega+producto. Solo el motor de movimientos escribe Quantity, y siempre
// dentro de una transacción.
type StockLevelRepository interface {
	// Get devuelve el nivel o nil si la fila no existe.
	Get(ctx context.Context, productID, warehouseID string) (*entity.StockLevel, error)
	// GetForUpdate asegura que la fila exista (cantidad 0 si es nueva) y la
	// bloquea con SELECT FOR UPDATE hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.StockLevel, error)
	// Upsert inserta o actualiza la fila completa (cantidad, ubicación, reorden).
	Upsert(ctx context.Context, level *entity.StockLevel) error
	List(ctx context.Context, filter StockLevelFilter, limit, offset int) ([]*entity.StockLevel, error)
}
