package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de StockLevelRepository sobre PostgreSQL
// (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

const stockLevelColumns = `product_id, warehouse_id, location_id, quantity, reorder_point, updated_at`

// Get obtiene el nivel de stock de un producto en una bodega, o nil si no hay fila.
func (r *StockLevelRepo) Get(ctx context.Context, productID, warehouseID string) (*entity.StockLevel, error) {
	query := `
		SELECT ` + stockLevelColumns + `
		FROM stock_levels WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.StockLevel
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.LocationID, &s.Quantity, &s.ReorderPoint, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}

// GetForUpdate asegura que exista la fila (cantidad 0 si es nueva) y la
// bloquea con SELECT FOR UPDATE. El insert previo garantiza que el bloqueo
// siempre tenga fila sobre la cual sostenerse, incluso en la primera
// referencia a la llave (creación perezosa).
func (r *StockLevelRepo) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.StockLevel, error) {
	ensure := `
		INSERT INTO stock_levels (product_id, warehouse_id, quantity, reorder_point, updated_at)
		VALUES ($1, $2, 0, 0, now())
		ON CONFLICT (product_id, warehouse_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, ensure, productID, warehouseID); err != nil {
		return nil, fmt.Errorf("ensure stock level: %w", err)
	}
	query := `
		SELECT ` + stockLevelColumns + `
		FROM stock_levels WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.StockLevel
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.LocationID, &s.Quantity, &s.ReorderPoint, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la fila por (producto, bodega).
func (r *StockLevelRepo) Upsert(ctx context.Context, level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (product_id, warehouse_id, location_id, quantity, reorder_point, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET location_id = EXCLUDED.location_id,
		              quantity = EXCLUDED.quantity,
		              reorder_point = EXCLUDED.reorder_point,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		level.ProductID, level.WarehouseID, level.LocationID,
		level.Quantity, level.ReorderPoint, level.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// List lista niveles con filtros opcionales por producto, bodega, ubicación
// o categoría del producto.
func (r *StockLevelRepo) List(ctx context.Context, filter repository.StockLevelFilter, limit, offset int) ([]*entity.StockLevel, error) {
	query := `
		SELECT s.product_id, s.warehouse_id, s.location_id, s.quantity, s.reorder_point, s.updated_at
		FROM stock_levels s`
	var args []any
	pos := 1
	if filter.CategoryID != "" {
		query += " JOIN products p ON p.id = s.product_id"
	}
	query += " WHERE 1=1"
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND s.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND s.warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND s.location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND p.category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY s.updated_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var s entity.StockLevel
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.LocationID, &s.Quantity, &s.ReorderPoint, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
