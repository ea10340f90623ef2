package repository

import "context"

// DashboardFilter restringe los KPIs a una bodega, ubicación o categoría.
type DashboardFilter struct {
	WarehouseID string
	LocationID  string
	CategoryID  string
}

// StockKPIs agregados sobre StockLevel.
type StockKPIs struct {
	TotalQuantity int64 // suma de cantidades en stock
	LowStock      int64 // filas con 0 < quantity <= reorder_point
	OutOfStock    int64 // filas con quantity == 0
}

// PendingDocuments documentos en estado Draft, Waiting o Ready por tipo.
type PendingDocuments struct {
	Receipts   int64
	Deliveries int64
	Transfers  int64
}

// DashboardRepository consultas de solo lectura para los KPIs del tablero.
// Sin efectos secundarios; puede correr concurrente con cualquier escritura.
type DashboardRepository interface {
	GetStockKPIs(ctx context.Context, filter DashboardFilter) (*StockKPIs, error)
	GetPendingDocuments(ctx context.Context, warehouseID string) (*PendingDocuments, error)
}
