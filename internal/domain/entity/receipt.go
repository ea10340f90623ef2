package entity

import "time"

// Receipt representa una recepción de mercancía (stock entrante).
// Al validarse suma stock en la bodega y genera asientos positivos en el libro.
type Receipt struct {
	ID          string
	SupplierID  string
	WarehouseID string
	Status      DocumentStatus
	CreatedAt   time.Time
	ValidatedAt *time.Time
	CreatedBy   string
	Items       []ReceiptItem
}

// ReceiptItem línea de recepción.
type ReceiptItem struct {
	ID               string
	ReceiptID        string
	ProductID        string
	QuantityReceived int64
}
