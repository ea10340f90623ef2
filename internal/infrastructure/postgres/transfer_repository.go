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

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL
// (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste la cabecera y sus líneas.
func (r *TransferRepo) Create(ctx context.Context, transfer *entity.InternalTransfer) error {
	query := `
		INSERT INTO internal_transfers (id, from_warehouse_id, to_warehouse_id, status, created_at, completed_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		transfer.ID, transfer.FromWarehouseID, transfer.ToWarehouseID, string(transfer.Status),
		transfer.CreatedAt, transfer.CompletedAt, transfer.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert internal transfer: %w", err)
	}
	for i := range transfer.Items {
		item := &transfer.Items[i]
		itemQuery := `
			INSERT INTO internal_transfer_items (id, internal_transfer_id, product_id, quantity, from_location_id, to_location_id)
			VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := r.q.Exec(ctx, itemQuery, item.ID, item.TransferID, item.ProductID,
			item.Quantity, item.FromLocationID, item.ToLocationID); err != nil {
			return fmt.Errorf("insert transfer item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un traslado con sus líneas, o nil si no existe.
func (r *TransferRepo) GetByID(ctx context.Context, id string) (*entity.InternalTransfer, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene el traslado bloqueando la cabecera (SELECT FOR UPDATE).
func (r *TransferRepo) GetForUpdate(ctx context.Context, id string) (*entity.InternalTransfer, error) {
	return r.get(ctx, id, true)
}

func (r *TransferRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.InternalTransfer, error) {
	query := `
		SELECT id, from_warehouse_id, to_warehouse_id, status, created_at, completed_at, created_by
		FROM internal_transfers WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var transfer entity.InternalTransfer
	var status string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&transfer.ID, &transfer.FromWarehouseID, &transfer.ToWarehouseID, &status,
		&transfer.CreatedAt, &transfer.CompletedAt, &transfer.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get internal transfer: %w", err)
	}
	transfer.Status = entity.DocumentStatus(status)
	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	transfer.Items = items
	return &transfer, nil
}

func (r *TransferRepo) loadItems(ctx context.Context, transferID string) ([]entity.InternalTransferItem, error) {
	query := `
		SELECT id, internal_transfer_id, product_id, quantity, from_location_id, to_location_id
		FROM internal_transfer_items WHERE internal_transfer_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, transferID)
	if err != nil {
		return nil, fmt.Errorf("load transfer items: %w", err)
	}
	defer rows.Close()
	var items []entity.InternalTransferItem
	for rows.Next() {
		var item entity.InternalTransferItem
		if err := rows.Scan(&item.ID, &item.TransferID, &item.ProductID,
			&item.Quantity, &item.FromLocationID, &item.ToLocationID); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// List lista traslados paginados, recientes primero.
func (r *TransferRepo) List(ctx context.Context, limit, offset int) ([]*entity.InternalTransfer, error) {
	query := `
		SELECT id, from_warehouse_id, to_warehouse_id, status, created_at, completed_at, created_by
		FROM internal_transfers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list internal transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.InternalTransfer
	for rows.Next() {
		var transfer entity.InternalTransfer
		var status string
		if err := rows.Scan(&transfer.ID, &transfer.FromWarehouseID, &transfer.ToWarehouseID, &status,
			&transfer.CreatedAt, &transfer.CompletedAt, &transfer.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan internal transfer: %w", err)
		}
		transfer.Status = entity.DocumentStatus(status)
		list = append(list, &transfer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, transfer := range list {
		items, err := r.loadItems(ctx, transfer.ID)
		if err != nil {
			return nil, err
		}
		transfer.Items = items
	}
	return list, nil
}

// MarkDone fija status=Done y la marca de completado.
func (r *TransferRepo) MarkDone(ctx context.Context, id string, completedAt time.Time) error {
	query := `
		UPDATE internal_transfers SET status = $2, completed_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, string(entity.StatusDone), completedAt)
	if err != nil {
		return fmt.Errorf("mark transfer done: %w", err)
	}
	return nil
}
