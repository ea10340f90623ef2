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

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository sobre PostgreSQL
// (usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste la cabecera y sus líneas.
func (r *ReceiptRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, supplier_id, warehouse_id, status, created_at, validated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		receipt.ID, receipt.SupplierID, receipt.WarehouseID, string(receipt.Status),
		receipt.CreatedAt, receipt.ValidatedAt, receipt.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	for i := range receipt.Items {
		item := &receipt.Items[i]
		itemQuery := `
			INSERT INTO receipt_items (id, receipt_id, product_id, quantity_received)
			VALUES ($1, $2, $3, $4)`
		if _, err := r.q.Exec(ctx, itemQuery, item.ID, item.ReceiptID, item.ProductID, item.QuantityReceived); err != nil {
			return fmt.Errorf("insert receipt item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una recepción con sus líneas, o nil si no existe.
func (r *ReceiptRepo) GetByID(ctx context.Context, id string) (*entity.Receipt, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene la recepción bloqueando la cabecera (SELECT FOR UPDATE).
func (r *ReceiptRepo) GetForUpdate(ctx context.Context, id string) (*entity.Receipt, error) {
	return r.get(ctx, id, true)
}

func (r *ReceiptRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Receipt, error) {
	query := `
		SELECT id, supplier_id, warehouse_id, status, created_at, validated_at, created_by
		FROM receipts WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var receipt entity.Receipt
	var status string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&receipt.ID, &receipt.SupplierID, &receipt.WarehouseID, &status,
		&receipt.CreatedAt, &receipt.ValidatedAt, &receipt.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	receipt.Status = entity.DocumentStatus(status)
	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	receipt.Items = items
	return &receipt, nil
}

func (r *ReceiptRepo) loadItems(ctx context.Context, receiptID string) ([]entity.ReceiptItem, error) {
	query := `
		SELECT id, receipt_id, product_id, quantity_received
		FROM receipt_items WHERE receipt_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("load receipt items: %w", err)
	}
	defer rows.Close()
	var items []entity.ReceiptItem
	for rows.Next() {
		var item entity.ReceiptItem
		if err := rows.Scan(&item.ID, &item.ReceiptID, &item.ProductID, &item.QuantityReceived); err != nil {
			return nil, fmt.Errorf("scan receipt item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// List lista recepciones paginadas, recientes primero.
func (r *ReceiptRepo) List(ctx context.Context, limit, offset int) ([]*entity.Receipt, error) {
	query := `
		SELECT id, supplier_id, warehouse_id, status, created_at, validated_at, created_by
		FROM receipts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var receipt entity.Receipt
		var status string
		if err := rows.Scan(&receipt.ID, &receipt.SupplierID, &receipt.WarehouseID, &status,
			&receipt.CreatedAt, &receipt.ValidatedAt, &receipt.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		receipt.Status = entity.DocumentStatus(status)
		list = append(list, &receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, receipt := range list {
		items, err := r.loadItems(ctx, receipt.ID)
		if err != nil {
			return nil, err
		}
		receipt.Items = items
	}
	return list, nil
}

// MarkDone fija status=Done y la marca de validación. Única vía a Done.
func (r *ReceiptRepo) MarkDone(ctx context.Context, id string, validatedAt time.Time) error {
	query := `
		UPDATE receipts SET status = $2, validated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, string(entity.StatusDone), validatedAt)
	if err != nil {
		return fmt.Errorf("mark receipt done: %w", err)
	}
	return nil
}
