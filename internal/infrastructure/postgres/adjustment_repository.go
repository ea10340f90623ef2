package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementación de AdjustmentRepository sobre PostgreSQL.
// Los ajustes nacen en Done, así que no hay MarkDone ni bloqueo de cabecera.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persiste el ajuste ya ejecutado con sus líneas (incluida la foto
// de cantidad en sistema).
func (r *AdjustmentRepo) Create(ctx context.Context, adjustment *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (id, warehouse_id, status, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		adjustment.ID, adjustment.WarehouseID, string(adjustment.Status),
		adjustment.Reason, adjustment.CreatedAt, adjustment.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock adjustment: %w", err)
	}
	for i := range adjustment.Items {
		item := &adjustment.Items[i]
		itemQuery := `
			INSERT INTO stock_adjustment_items (id, stock_adjustment_id, product_id, counted_quantity, system_quantity, location_id)
			VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := r.q.Exec(ctx, itemQuery, item.ID, item.AdjustmentID, item.ProductID,
			item.CountedQuantity, item.SystemQuantity, item.LocationID); err != nil {
			return fmt.Errorf("insert adjustment item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un ajuste con sus líneas, o nil si no existe.
func (r *AdjustmentRepo) GetByID(ctx context.Context, id string) (*entity.StockAdjustment, error) {
	query := `
		SELECT id, warehouse_id, status, reason, created_at, created_by
		FROM stock_adjustments WHERE id = $1`
	var adjustment entity.StockAdjustment
	var status string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&adjustment.ID, &adjustment.WarehouseID, &status,
		&adjustment.Reason, &adjustment.CreatedAt, &adjustment.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock adjustment: %w", err)
	}
	adjustment.Status = entity.DocumentStatus(status)
	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	adjustment.Items = items
	return &adjustment, nil
}

func (r *AdjustmentRepo) loadItems(ctx context.Context, adjustmentID string) ([]entity.StockAdjustmentItem, error) {
	query := `
		SELECT id, stock_adjustment_id, product_id, counted_quantity, system_quantity, location_id
		FROM stock_adjustment_items WHERE stock_adjustment_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, adjustmentID)
	if err != nil {
		return nil, fmt.Errorf("load adjustment items: %w", err)
	}
	defer rows.Close()
	var items []entity.StockAdjustmentItem
	for rows.Next() {
		var item entity.StockAdjustmentItem
		if err := rows.Scan(&item.ID, &item.AdjustmentID, &item.ProductID,
			&item.CountedQuantity, &item.SystemQuantity, &item.LocationID); err != nil {
			return nil, fmt.Errorf("scan adjustment item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// List lista ajustes paginados, recientes primero.
func (r *AdjustmentRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockAdjustment, error) {
	query := `
		SELECT id, warehouse_id, status, reason, created_at, created_by
		FROM stock_adjustments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAdjustment
	for rows.Next() {
		var adjustment entity.StockAdjustment
		var status string
		if err := rows.Scan(&adjustment.ID, &adjustment.WarehouseID, &status,
			&adjustment.Reason, &adjustment.CreatedAt, &adjustment.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan stock adjustment: %w", err)
		}
		adjustment.Status = entity.DocumentStatus(status)
		list = append(list, &adjustment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, adjustment := range list {
		items, err := r.loadItems(ctx, adjustment.ID)
		if err != nil {
			return nil, err
		}
		adjustment.Items = items
	}
	return list, nil
}
