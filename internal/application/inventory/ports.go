package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o se aplican todas las escrituras de stock, libro y documento,
// o ninguna. Los conflictos transitorios (deadlock, serialización) se
// reintentan un número acotado de veces antes de devolver el error.
type TxRunner interface {
	Run(ctx context.Context, fn func(r repository.TxRepos) error) error
}
