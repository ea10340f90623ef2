package entity

import "github.com/tu-usuario/almacen-pro/internal/domain"

// Estados del ciclo de vida de un documento.
// Draft → Waiting → Ready → Done; Canceled alcanzable desde cualquier estado
// no terminal. Done y Canceled son absorbentes.
type DocumentStatus string

const (
	StatusDraft    DocumentStatus = "Draft"
	StatusWaiting  DocumentStatus = "Waiting"
	StatusReady    DocumentStatus = "Ready"
	StatusDone     DocumentStatus = "Done"
	StatusCanceled DocumentStatus = "Canceled"
)

// Tipos de documento, tal como quedan registrados en el libro mayor de stock.
const (
	DocumentTypeReceipt    = "Receipt"
	DocumentTypeDelivery   = "Delivery"
	DocumentTypeTransfer   = "Internal Transfer"
	DocumentTypeAdjustment = "Adjustment"
)

// Valid indica si el estado es uno de los cinco conocidos.
func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusWaiting, StatusReady, StatusDone, StatusCanceled:
		return true
	}
	return false
}

// CanComplete verifica la guarda de la transición de completado:
// un documento Done no se vuelve a completar y uno Canceled no se completa nunca.
func (s DocumentStatus) CanComplete() error {
	switch s {
	case StatusDone:
		return domain.ErrAlreadyCompleted
	case StatusCanceled:
		return domain.ErrInvalidState
	}
	return nil
}
