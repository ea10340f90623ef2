package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el tablero.
// Corre sobre el pool, sin transacción: los KPIs son una foto informativa.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del tablero.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetStockKPIs calcula en una sola pasada el total en stock, las filas en
// stock bajo (0 < quantity <= reorder_point) y las agotadas (quantity = 0).
func (r *DashboardRepo) GetStockKPIs(ctx context.Context, filter repository.DashboardFilter) (*repository.StockKPIs, error) {
	query := `
		SELECT
			COALESCE(SUM(sl.quantity), 0),
			COUNT(*) FILTER (WHERE sl.quantity > 0 AND sl.quantity <= sl.reorder_point),
			COUNT(*) FILTER (WHERE sl.quantity = 0)
		FROM stock_levels sl`
	args := []interface{}{}
	argN := 1

	if filter.CategoryID != "" {
		query += " JOIN products p ON p.id = sl.product_id"
	}
	query += " WHERE 1=1"
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND sl.warehouse_id = $%d", argN)
		args = append(args, filter.WarehouseID)
		argN++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND sl.location_id = $%d", argN)
		args = append(args, filter.LocationID)
		argN++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND p.category_id = $%d", argN)
		args = append(args, filter.CategoryID)
		argN++
	}

	var kpis repository.StockKPIs
	err := r.q.QueryRow(ctx, query, args...).Scan(&kpis.TotalQuantity, &kpis.LowStock, &kpis.OutOfStock)
	if err != nil {
		return nil, fmt.Errorf("stock kpis: %w", err)
	}
	return &kpis, nil
}

// GetPendingDocuments cuenta documentos no cerrados (Draft, Waiting, Ready)
// por tipo. Para traslados la bodega filtra por origen o destino.
func (r *DashboardRepo) GetPendingDocuments(ctx context.Context, warehouseID string) (*repository.PendingDocuments, error) {
	var pending repository.PendingDocuments

	receiptQuery := `SELECT COUNT(*) FROM receipts WHERE status IN ('Draft', 'Waiting', 'Ready')`
	deliveryQuery := `SELECT COUNT(*) FROM delivery_orders WHERE status IN ('Draft', 'Waiting', 'Ready')`
	transferQuery := `SELECT COUNT(*) FROM internal_transfers WHERE status IN ('Draft', 'Waiting', 'Ready')`
	args := []interface{}{}
	if warehouseID != "" {
		receiptQuery += " AND warehouse_id = $1"
		deliveryQuery += " AND warehouse_id = $1"
		transferQuery += " AND (from_warehouse_id = $1 OR to_warehouse_id = $1)"
		args = append(args, warehouseID)
	}

	if err := r.q.QueryRow(ctx, receiptQuery, args...).Scan(&pending.Receipts); err != nil {
		return nil, fmt.Errorf("pending receipts: %w", err)
	}
	if err := r.q.QueryRow(ctx, deliveryQuery, args...).Scan(&pending.Deliveries); err != nil {
		return nil, fmt.Errorf("pending deliveries: %w", err)
	}
	if err := r.q.QueryRow(ctx, transferQuery, args...).Scan(&pending.Transfers); err != nil {
		return nil, fmt.Errorf("pending transfers: %w", err)
	}
	return &pending, nil
}
