package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"

	"github.com/jackc/pgx/v5"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL,
// incluye las ubicaciones internas de cada bodega.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create inserta una bodega. Nombre duplicado se traduce a ErrDuplicate.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, warehouse.ID, warehouse.Name, warehouse.CreatedAt, warehouse.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bodega %s: %w", warehouse.Name, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega, o nil si no existe.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	query := `SELECT id, name, created_at, updated_at FROM warehouses WHERE id = $1`
	var warehouse entity.Warehouse
	err := r.q.QueryRow(ctx, query, id).Scan(
		&warehouse.ID, &warehouse.Name, &warehouse.CreatedAt, &warehouse.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &warehouse, nil
}

// List lista bodegas paginadas por nombre.
func (r *WarehouseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	query := `SELECT id, name, created_at, updated_at FROM warehouses ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var warehouses []*entity.Warehouse
	for rows.Next() {
		var warehouse entity.Warehouse
		if err := rows.Scan(&warehouse.ID, &warehouse.Name, &warehouse.CreatedAt, &warehouse.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, &warehouse)
	}
	return warehouses, rows.Err()
}

// CreateLocation inserta una ubicación dentro de una bodega.
func (r *WarehouseRepo) CreateLocation(ctx context.Context, location *entity.Location) error {
	query := `
		INSERT INTO locations (id, name, warehouse_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, location.ID, location.Name, location.WarehouseID, location.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ubicación %s: %w", location.Name, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetLocationByID obtiene una ubicación, o nil si no existe.
func (r *WarehouseRepo) GetLocationByID(ctx context.Context, id string) (*entity.Location, error) {
	query := `SELECT id, name, warehouse_id, created_at FROM locations WHERE id = $1`
	var location entity.Location
	err := r.q.QueryRow(ctx, query, id).Scan(
		&location.ID, &location.Name, &location.WarehouseID, &location.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &location, nil
}

// ListLocations lista las ubicaciones de una bodega.
func (r *WarehouseRepo) ListLocations(ctx context.Context, warehouseID string) ([]*entity.Location, error) {
	query := `SELECT id, name, warehouse_id, created_at FROM locations WHERE warehouse_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var locations []*entity.Location
	for rows.Next() {
		var location entity.Location
		if err := rows.Scan(&location.ID, &location.Name, &location.WarehouseID, &location.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, &location)
	}
	return locations, rows.Err()
}
