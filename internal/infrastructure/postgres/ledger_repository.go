package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del libro mayor de stock sobre PostgreSQL.
// La tabla solo recibe INSERT; no hay Update ni Delete en este adaptador.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append inserta un asiento inmutable.
func (r *LedgerRepo) Append(ctx context.Context, entry *entity.StockLedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_ledger_entries
			(id, product_id, warehouse_id, location_id, change_quantity, new_stock_level,
			 document_type, document_id, timestamp, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.WarehouseID, entry.LocationID,
		entry.ChangeQuantity, entry.NewStockLevel,
		entry.DocumentType, entry.DocumentID, entry.Timestamp, entry.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// List lista asientos con filtros opcionales, del más reciente al más antiguo.
func (r *LedgerRepo) List(ctx context.Context, filter repository.LedgerFilter, limit, offset int) ([]*entity.StockLedgerEntry, error) {
	query := `
		SELECT id, product_id, warehouse_id, location_id, change_quantity, new_stock_level,
		       document_type, document_id, timestamp, created_by
		FROM stock_ledger_entries WHERE 1=1`
	var args []any
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	if filter.DocumentType != "" {
		query += fmt.Sprintf(" AND document_type = $%d", pos)
		args = append(args, filter.DocumentType)
		pos++
	}
	if filter.DocumentID != "" {
		query += fmt.Sprintf(" AND document_id = $%d", pos)
		args = append(args, filter.DocumentID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLedgerEntry
	for rows.Next() {
		var e entity.StockLedgerEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.WarehouseID, &e.LocationID,
			&e.ChangeQuantity, &e.NewStockLevel, &e.DocumentType, &e.DocumentID,
			&e.Timestamp, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SumByKey suma los deltas de una llave (producto, bodega). Debe igualar el
// StockLevel.Quantity vigente de esa llave: invariante de conciliación.
func (r *LedgerRepo) SumByKey(ctx context.Context, productID, warehouseID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(change_quantity), 0)
		FROM stock_ledger_entries
		WHERE product_id = $1 AND warehouse_id = $2`
	var sum int64
	if err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum ledger by key: %w", err)
	}
	return sum, nil
}
