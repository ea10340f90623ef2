package dto

import "time"

// StockLevelResponse nivel de stock de un producto en una bodega.
type StockLevelResponse struct {
	ProductID    string    `json:"product_id"`
	WarehouseID  string    `json:"warehouse_id"`
	LocationID   *string   `json:"location_id,omitempty"`
	Quantity     int64     `json:"quantity"`
	ReorderPoint int64     `json:"reorder_point"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LedgerEntryResponse asiento del libro mayor de stock.
type LedgerEntryResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	WarehouseID    string    `json:"warehouse_id"`
	LocationID     *string   `json:"location_id,omitempty"`
	ChangeQuantity int64     `json:"change_quantity"`
	NewStockLevel  int64     `json:"new_stock_level"`
	DocumentType   string    `json:"document_type"`
	DocumentID     string    `json:"document_id"`
	Timestamp      time.Time `json:"timestamp"`
	CreatedBy      string    `json:"created_by"`
}
