package entity

import "time"

// DeliveryOrder representa una orden de entrega (stock saliente).
// Al validarse verifica disponibilidad de todas las líneas antes de mutar nada.
type DeliveryOrder struct {
	ID          string
	WarehouseID string
	Status      DocumentStatus
	CreatedAt   time.Time
	ValidatedAt *time.Time
	CreatedBy   string
	Items       []DeliveryOrderItem
}

// DeliveryOrderItem línea de entrega.
type DeliveryOrderItem struct {
	ID                string
	DeliveryOrderID   string
	ProductID         string
	QuantityDelivered int64
}
