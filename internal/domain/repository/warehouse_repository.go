package repository

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse y sus
// ubicaciones (DIP).
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error)

	CreateLocation(ctx context.Context, location *entity.Location) error
	GetLocationByID(ctx context.Context, id string) (*entity.Location, error)
	ListLocations(ctx context.Context, warehouseID string) ([]*entity.Location, error)
}
