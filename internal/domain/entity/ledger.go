package entity

import "time"

// StockLedgerEntry es un hecho inmutable del libro mayor de stock: un delta de
// cantidad causado por un documento, con la foto del nivel resultante.
// Solo se inserta, nunca se actualiza ni borra. La suma acumulada de
// ChangeQuantity por (producto, bodega, ubicación) debe igualar el
// StockLevel.Quantity vigente de esa llave.
type StockLedgerEntry struct {
	ID             string
	ProductID      string
	WarehouseID    string
	LocationID     *string
	ChangeQuantity int64 // positivo entrada, negativo salida
	NewStockLevel  int64 // nivel después de aplicar el delta
	DocumentType   string
	DocumentID     string
	Timestamp      time.Time
	CreatedBy      string
}
