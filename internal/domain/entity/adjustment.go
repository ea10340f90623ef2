package entity

import "time"

// StockAdjustment representa un ajuste por conteo físico.
// Se crea directamente en Done: las líneas se procesan en la creación,
// sobreescribiendo el stock con la cantidad contada.
type StockAdjustment struct {
	ID          string
	WarehouseID string
	Status      DocumentStatus
	Reason      string
	CreatedAt   time.Time
	CreatedBy   string
	Items       []StockAdjustmentItem
}

// StockAdjustmentItem línea de ajuste. SystemQuantity es la foto de la cantidad
// en sistema al momento de ejecutar el ajuste, no al crear la petición.
type StockAdjustmentItem struct {
	ID              string
	AdjustmentID    string
	ProductID       string
	CountedQuantity int64
	SystemQuantity  int64
	LocationID      *string
}
