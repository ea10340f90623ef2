package dto

import "time"

// CreateReceiptRequest body para POST /api/receipts.
type CreateReceiptRequest struct {
	SupplierID  string               `json:"supplier_id"`
	WarehouseID string               `json:"warehouse_id"`
	Status      string               `json:"status,omitempty"`
	Items       []ReceiptItemRequest `json:"items"`
}

// ReceiptItemRequest línea de recepción.
type ReceiptItemRequest struct {
	ProductID        string `json:"product_id"`
	QuantityReceived int64  `json:"quantity_received"`
}

// ReceiptResponse representación de una recepción.
type ReceiptResponse struct {
	ID          string                `json:"id"`
	SupplierID  string                `json:"supplier_id"`
	WarehouseID string                `json:"warehouse_id"`
	Status      string                `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	ValidatedAt *time.Time            `json:"validated_at,omitempty"`
	CreatedBy   string                `json:"created_by"`
	Items       []ReceiptItemResponse `json:"items"`
}

// ReceiptItemResponse línea de recepción en respuestas.
type ReceiptItemResponse struct {
	ID               string `json:"id"`
	ProductID        string `json:"product_id"`
	QuantityReceived int64  `json:"quantity_received"`
}

// CreateDeliveryRequest body para POST /api/deliveries.
type CreateDeliveryRequest struct {
	WarehouseID string                `json:"warehouse_id"`
	Status      string                `json:"status,omitempty"`
	Items       []DeliveryItemRequest `json:"items"`
}

// DeliveryItemRequest línea de entrega.
type DeliveryItemRequest struct {
	ProductID         string `json:"product_id"`
	QuantityDelivered int64  `json:"quantity_delivered"`
}

// DeliveryResponse representación de una orden de entrega.
type DeliveryResponse struct {
	ID          string                 `json:"id"`
	WarehouseID string                 `json:"warehouse_id"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
	ValidatedAt *time.Time             `json:"validated_at,omitempty"`
	CreatedBy   string                 `json:"created_by"`
	Items       []DeliveryItemResponse `json:"items"`
}

// DeliveryItemResponse línea de entrega en respuestas.
type DeliveryItemResponse struct {
	ID                string `json:"id"`
	ProductID         string `json:"product_id"`
	QuantityDelivered int64  `json:"quantity_delivered"`
}

// CreateTransferRequest body para POST /api/transfers.
type CreateTransferRequest struct {
	FromWarehouseID string                `json:"from_warehouse_id"`
	ToWarehouseID   string                `json:"to_warehouse_id"`
	Status          string                `json:"status,omitempty"`
	Items           []TransferItemRequest `json:"items"`
}

// TransferItemRequest línea de traslado con ubicaciones opcionales.
type TransferItemRequest struct {
	ProductID      string  `json:"product_id"`
	Quantity       int64   `json:"quantity"`
	FromLocationID *string `json:"from_location_id,omitempty"`
	ToLocationID   *string `json:"to_location_id,omitempty"`
}

// TransferResponse representación de un traslado interno.
type TransferResponse struct {
	ID              string                 `json:"id"`
	FromWarehouseID string                 `json:"from_warehouse_id"`
	ToWarehouseID   string                 `json:"to_warehouse_id"`
	Status          string                 `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
	CompletedAt     *time.Time             `json:"completed_at,omitempty"`
	CreatedBy       string                 `json:"created_by"`
	Items           []TransferItemResponse `json:"items"`
}

// TransferItemResponse línea de traslado en respuestas.
type TransferItemResponse struct {
	ID             string  `json:"id"`
	ProductID      string  `json:"product_id"`
	Quantity       int64   `json:"quantity"`
	FromLocationID *string `json:"from_location_id,omitempty"`
	ToLocationID   *string `json:"to_location_id,omitempty"`
}

// CreateAdjustmentRequest body para POST /api/adjustments.
// El ajuste se aplica inmediatamente: nace en estado Done.
type CreateAdjustmentRequest struct {
	WarehouseID string                  `json:"warehouse_id"`
	Reason      string                  `json:"reason,omitempty"`
	Items       []AdjustmentItemRequest `json:"items"`
}

// AdjustmentItemRequest línea de ajuste: la cantidad contada en piso.
type AdjustmentItemRequest struct {
	ProductID       string  `json:"product_id"`
	CountedQuantity int64   `json:"counted_quantity"`
	LocationID      *string `json:"location_id,omitempty"`
}

// AdjustmentResponse representación de un ajuste con sus líneas procesadas.
type AdjustmentResponse struct {
	ID          string                   `json:"id"`
	WarehouseID string                   `json:"warehouse_id"`
	Status      string                   `json:"status"`
	Reason      string                   `json:"reason,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	CreatedBy   string                   `json:"created_by"`
	Items       []AdjustmentItemResponse `json:"items"`
}

// AdjustmentItemResponse incluye la foto de la cantidad en sistema al
// momento del ajuste.
type AdjustmentItemResponse struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	CountedQuantity int64   `json:"counted_quantity"`
	SystemQuantity  int64   `json:"system_quantity"`
	LocationID      *string `json:"location_id,omitempty"`
}
