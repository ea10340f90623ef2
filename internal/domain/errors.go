package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrAlreadyCompleted  = errors.New("documento ya completado")
	ErrInvalidState      = errors.New("estado del documento no permite la operación")
	ErrSameWarehouse     = errors.New("bodega origen y destino no pueden ser la misma")
)

// InsufficientStockError detalla un rechazo por stock insuficiente:
// qué producto, cuánto hay disponible y cuánto se solicitó.
type InsufficientStockError struct {
	ProductID string
	Available int64
	Required  int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: disponible %d, requerido %d",
		e.ProductID, e.Available, e.Required)
}

// Is hace que errors.Is(err, ErrInsufficientStock) devuelva true para este tipo.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
