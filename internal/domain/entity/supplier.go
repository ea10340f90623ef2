package entity

import "time"

// Supplier representa un proveedor; las recepciones lo referencian.
type Supplier struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
}
