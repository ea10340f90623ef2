package entity

import "time"

// Warehouse representa una bodega: partición de stock de primer nivel.
type Warehouse struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location representa una ubicación dentro de una bodega (many-to-one).
// El stock puede existir a nivel de bodega sin ubicación.
type Location struct {
	ID          string
	Name        string
	WarehouseID string
	CreatedAt   time.Time
}
