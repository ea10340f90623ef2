package entity

import "time"

// InternalTransfer representa un traslado de stock entre bodegas.
// La cantidad total se conserva: lo que sale del origen entra al destino, exacto.
type InternalTransfer struct {
	ID              string
	FromWarehouseID string
	ToWarehouseID   string
	Status          DocumentStatus
	CreatedAt       time.Time
	CompletedAt     *time.Time
	CreatedBy       string
	Items           []InternalTransferItem
}

// InternalTransferItem línea de traslado, con ubicación origen/destino opcional.
type InternalTransferItem struct {
	ID             string
	TransferID     string
	ProductID      string
	Quantity       int64
	FromLocationID *string
	ToLocationID   *string
}
