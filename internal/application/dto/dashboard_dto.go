package dto

// DashboardKPIsDTO resumen de inventario para el tablero.
type DashboardKPIsDTO struct {
	TotalProductsInStock       int64 `json:"total_products_in_stock"`
	LowStockItems              int64 `json:"low_stock_items"`
	OutOfStockItems            int64 `json:"out_of_stock_items"`
	PendingReceipts            int64 `json:"pending_receipts"`
	PendingDeliveries          int64 `json:"pending_deliveries"`
	InternalTransfersScheduled int64 `json:"internal_transfers_scheduled"`
}
