package entity

import "time"

// StockLevel es el stock actual de un producto en una bodega.
// Fila única por (product_id, warehouse_id); LocationID es un atributo opcional
// que el motor de movimientos reescribe en traslados y ajustes.
//
// Quantity nunca baja de cero por entregas o traslados; solo un ajuste
// puede fijarla directamente. Únicamente el motor de movimientos la escribe.
type StockLevel struct {
	ProductID    string
	WarehouseID  string
	LocationID   *string
	Quantity     int64
	ReorderPoint int64
	UpdatedAt    time.Time
}
