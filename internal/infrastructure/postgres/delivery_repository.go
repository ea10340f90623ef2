package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación de DeliveryRepository sobre PostgreSQL
// (usable con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste la cabecera y sus líneas.
func (r *DeliveryRepo) Create(ctx context.Context, delivery *entity.DeliveryOrder) error {
	query := `
		INSERT INTO delivery_orders (id, warehouse_id, status, created_at, validated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		delivery.ID, delivery.WarehouseID, string(delivery.Status),
		delivery.CreatedAt, delivery.ValidatedAt, delivery.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert delivery order: %w", err)
	}
	for i := range delivery.Items {
		item := &delivery.Items[i]
		itemQuery := `
			INSERT INTO delivery_order_items (id, delivery_order_id, product_id, quantity_delivered)
			VALUES ($1, $2, $3, $4)`
		if _, err := r.q.Exec(ctx, itemQuery, item.ID, item.DeliveryOrderID, item.ProductID, item.QuantityDelivered); err != nil {
			return fmt.Errorf("insert delivery item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una entrega con sus líneas, o nil si no existe.
func (r *DeliveryRepo) GetByID(ctx context.Context, id string) (*entity.DeliveryOrder, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene la entrega bloqueando la cabecera (SELECT FOR UPDATE).
func (r *DeliveryRepo) GetForUpdate(ctx context.Context, id string) (*entity.DeliveryOrder, error) {
	return r.get(ctx, id, true)
}

func (r *DeliveryRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.DeliveryOrder, error) {
	query := `
		SELECT id, warehouse_id, status, created_at, validated_at, created_by
		FROM delivery_orders WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var delivery entity.DeliveryOrder
	var status string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&delivery.ID, &delivery.WarehouseID, &status,
		&delivery.CreatedAt, &delivery.ValidatedAt, &delivery.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery order: %w", err)
	}
	delivery.Status = entity.DocumentStatus(status)
	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	delivery.Items = items
	return &delivery, nil
}

func (r *DeliveryRepo) loadItems(ctx context.Context, deliveryID string) ([]entity.DeliveryOrderItem, error) {
	query := `
		SELECT id, delivery_order_id, product_id, quantity_delivered
		FROM delivery_order_items WHERE delivery_order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("load delivery items: %w", err)
	}
	defer rows.Close()
	var items []entity.DeliveryOrderItem
	for rows.Next() {
		var item entity.DeliveryOrderItem
		if err := rows.Scan(&item.ID, &item.DeliveryOrderID, &item.ProductID, &item.QuantityDelivered); err != nil {
			return nil, fmt.Errorf("scan delivery item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// List lista entregas paginadas, recientes primero.
func (r *DeliveryRepo) List(ctx context.Context, limit, offset int) ([]*entity.DeliveryOrder, error) {
	query := `
		SELECT id, warehouse_id, status, created_at, validated_at, created_by
		FROM delivery_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list delivery orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryOrder
	for rows.Next() {
		var delivery entity.DeliveryOrder
		var status string
		if err := rows.Scan(&delivery.ID, &delivery.WarehouseID, &status,
			&delivery.CreatedAt, &delivery.ValidatedAt, &delivery.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan delivery order: %w", err)
		}
		delivery.Status = entity.DocumentStatus(status)
		list = append(list, &delivery)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, delivery := range list {
		items, err := r.loadItems(ctx, delivery.ID)
		if err != nil {
			return nil, err
		}
		delivery.Items = items
	}
	return list, nil
}

// MarkDone fija status=Done y la marca de validación.
func (r *DeliveryRepo) MarkDone(ctx context.Context, id string, validatedAt time.Time) error {
	query := `
		UPDATE delivery_orders SET status = $2, validated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, string(entity.StatusDone), validatedAt)
	if err != nil {
		return fmt.Errorf("mark delivery done: %w", err)
	}
	return nil
}
