package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// initialStatus normaliza el estado inicial de un documento: vacío = Draft;
// los estados terminales no son válidos como estado de creación.
func initialStatus(s entity.DocumentStatus) (entity.DocumentStatus, error) {
	if s == "" {
		return entity.StatusDraft, nil
	}
	if !s.Valid() || s == entity.StatusDone || s == entity.StatusCanceled {
		return "", domain.ErrInvalidInput
	}
	return s, nil
}

// requireWarehouse verifica que la bodega exista.
func requireWarehouse(ctx context.Context, repo repository.WarehouseRepository, id string) error {
	warehouse, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return nil
}

// requireProducts verifica que todos los productos referenciados existan.
func requireProducts(ctx context.Context, repo repository.ProductRepository, ids []string) error {
	for _, id := range ids {
		product, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}
