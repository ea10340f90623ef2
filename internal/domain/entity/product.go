package entity

import "time"

// Product representa un producto o SKU del inventario.
// El stock se maneja por bodega en StockLevel; el producto solo describe el artículo.
type Product struct {
	ID            string
	Name          string
	SKU           string // código único global
	CategoryID    string
	UnitOfMeasure string // unidad, caja, kg...
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
