package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TransferUseCase crea y completa traslados internos entre bodegas.
// Completar un traslado resta del origen y suma al destino la misma cantidad
// exacta por línea, con dos asientos por línea (salida y entrada) en la misma
// transacción: la cantidad total se conserva aritméticamente.
type TransferUseCase struct {
	txRunner      TxRunner
	transferRepo  repository.TransferRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		transferRepo:  transferRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// TransferItemInput línea de entrada para crear un traslado.
type TransferItemInput struct {
	ProductID      string
	Quantity       int64
	FromLocationID *string
	ToLocationID   *string
}

// CreateTransferInput entrada para crear un traslado interno.
type CreateTransferInput struct {
	FromWarehouseID string
	ToWarehouseID   string
	Status          entity.DocumentStatus
	UserID          string
	Items           []TransferItemInput
}

// Create registra un traslado con sus líneas. Origen == destino se rechaza
// antes de cualquier búsqueda.
func (uc *TransferUseCase) Create(ctx context.Context, in CreateTransferInput) (*entity.InternalTransfer, error) {
	if in.FromWarehouseID != "" && in.FromWarehouseID == in.ToWarehouseID {
		return nil, domain.ErrSameWarehouse
	}
	status, err := initialStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if in.FromWarehouseID == "" || in.ToWarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := requireWarehouse(ctx, uc.warehouseRepo, in.FromWarehouseID); err != nil {
		return nil, err
	}
	if err := requireWarehouse(ctx, uc.warehouseRepo, in.ToWarehouseID); err != nil {
		return nil, err
	}
	productIDs := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	if err := requireProducts(ctx, uc.productRepo, productIDs); err != nil {
		return nil, err
	}

	transfer := &entity.InternalTransfer{
		ID:              uuid.New().String(),
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Status:          status,
		CreatedAt:       time.Now(),
		CreatedBy:       in.UserID,
	}
	for _, item := range in.Items {
		transfer.Items = append(transfer.Items, entity.InternalTransferItem{
			ID:             uuid.New().String(),
			TransferID:     transfer.ID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			FromLocationID: item.FromLocationID,
			ToLocationID:   item.ToLocationID,
		})
	}

	err = uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		return r.Transfers.Create(ctx, transfer)
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// Complete ejecuta la transición de completado del traslado.
//
// Pre-flight solo contra la bodega origen (espejo del chequeo de entregas).
// Luego, por línea: resta en origen con asiento de salida, crea-o-bloquea el
// nivel destino, suma la misma cantidad, fija su ubicación a ToLocationID y
// asienta la entrada. Dos traslados cruzados sobre el mismo producto pueden
// interbloquearse; el TxRunner reintenta la transacción completa.
func (uc *TransferUseCase) Complete(ctx context.Context, id string) (*entity.InternalTransfer, error) {
	var out *entity.InternalTransfer
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		transfer, err := r.Transfers.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if err := transfer.Status.CanComplete(); err != nil {
			return err
		}
		if transfer.FromWarehouseID == transfer.ToWarehouseID {
			return domain.ErrSameWarehouse
		}

		now := time.Now()

		items := append([]entity.InternalTransferItem(nil), transfer.Items...)
		sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

		// Pre-flight contra el origen, acumulando líneas repetidas por producto.
		origins := make(map[string]*entity.StockLevel, len(items))
		required := make(map[string]int64, len(items))
		for _, item := range items {
			if _, ok := origins[item.ProductID]; !ok {
				stock, err := r.Stock.GetForUpdate(ctx, item.ProductID, transfer.FromWarehouseID)
				if err != nil {
					return err
				}
				origins[item.ProductID] = stock
			}
			required[item.ProductID] += item.Quantity
			if origins[item.ProductID].Quantity < required[item.ProductID] {
				return &domain.InsufficientStockError{
					ProductID: item.ProductID,
					Available: origins[item.ProductID].Quantity,
					Required:  required[item.ProductID],
				}
			}
		}

		dests := make(map[string]*entity.StockLevel, len(items))
		for _, item := range items {
			origin := origins[item.ProductID]
			origin.Quantity -= item.Quantity
			origin.UpdatedAt = now
			if err := r.Stock.Upsert(ctx, origin); err != nil {
				return err
			}
			outEntry := &entity.StockLedgerEntry{
				ID:             uuid.New().String(),
				ProductID:      item.ProductID,
				WarehouseID:    transfer.FromWarehouseID,
				LocationID:     item.FromLocationID,
				ChangeQuantity: -item.Quantity,
				NewStockLevel:  origin.Quantity,
				DocumentType:   entity.DocumentTypeTransfer,
				DocumentID:     transfer.ID,
				Timestamp:      now,
				CreatedBy:      transfer.CreatedBy,
			}
			if err := r.Ledger.Append(ctx, outEntry); err != nil {
				return err
			}

			dest, ok := dests[item.ProductID]
			if !ok {
				dest, err = r.Stock.GetForUpdate(ctx, item.ProductID, transfer.ToWarehouseID)
				if err != nil {
					return err
				}
				dests[item.ProductID] = dest
			}
			// El incremento es exactamente el decremento: conservación de cantidad.
			dest.Quantity += item.Quantity
			dest.LocationID = item.ToLocationID
			dest.UpdatedAt = now
			if err := r.Stock.Upsert(ctx, dest); err != nil {
				return err
			}
			inEntry := &entity.StockLedgerEntry{
				ID:             uuid.New().String(),
				ProductID:      item.ProductID,
				WarehouseID:    transfer.ToWarehouseID,
				LocationID:     item.ToLocationID,
				ChangeQuantity: item.Quantity,
				NewStockLevel:  dest.Quantity,
				DocumentType:   entity.DocumentTypeTransfer,
				DocumentID:     transfer.ID,
				Timestamp:      now,
				CreatedBy:      transfer.CreatedBy,
			}
			if err := r.Ledger.Append(ctx, inEntry); err != nil {
				return err
			}
		}

		if err := r.Transfers.MarkDone(ctx, transfer.ID, now); err != nil {
			return err
		}
		transfer.Status = entity.StatusDone
		transfer.CompletedAt = &now
		out = transfer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve un traslado con sus líneas.
func (uc *TransferUseCase) GetByID(ctx context.Context, id string) (*entity.InternalTransfer, error) {
	transfer, err := uc.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	return transfer, nil
}

// List devuelve traslados paginados.
func (uc *TransferUseCase) List(ctx context.Context, limit, offset int) ([]*entity.InternalTransfer, error) {
	return uc.transferRepo.List(ctx, limit, offset)
}
