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

// AdjustmentUseCase registra ajustes por conteo físico.
// Un ajuste nace directamente en Done: sus líneas se procesan al crearlo,
// sobreescribiendo el stock con la cantidad contada (no es un delta). Es la
// única vía que puede llevar una cantidad a cualquier valor no negativo sin
// chequeo de disponibilidad.
type AdjustmentUseCase struct {
	txRunner       TxRunner
	adjustmentRepo repository.AdjustmentRepository
	productRepo    repository.ProductRepository
	warehouseRepo  repository.WarehouseRepository
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(
	txRunner TxRunner,
	adjustmentRepo repository.AdjustmentRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{
		txRunner:       txRunner,
		adjustmentRepo: adjustmentRepo,
		productRepo:    productRepo,
		warehouseRepo:  warehouseRepo,
	}
}

// AdjustmentItemInput línea de entrada: la cantidad contada en piso.
type AdjustmentItemInput struct {
	ProductID       string
	CountedQuantity int64
	LocationID      *string
}

// CreateAdjustmentInput entrada para registrar un ajuste.
type CreateAdjustmentInput struct {
	WarehouseID string
	Reason      string
	UserID      string
	Items       []AdjustmentItemInput
}

// Create registra el ajuste y aplica sus líneas en una sola transacción.
//
// Por línea: bloquea-o-crea el nivel de stock, toma la foto system_quantity
// en ese instante, fija quantity = counted_quantity y asienta en el libro el
// delta firmado counted - system con new_stock_level = counted.
func (uc *AdjustmentUseCase) Create(ctx context.Context, in CreateAdjustmentInput) (*entity.StockAdjustment, error) {
	if in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.CountedQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := requireWarehouse(ctx, uc.warehouseRepo, in.WarehouseID); err != nil {
		return nil, err
	}
	productIDs := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	if err := requireProducts(ctx, uc.productRepo, productIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	adjustment := &entity.StockAdjustment{
		ID:          uuid.New().String(),
		WarehouseID: in.WarehouseID,
		Status:      entity.StatusDone,
		Reason:      in.Reason,
		CreatedAt:   now,
		CreatedBy:   in.UserID,
	}

	items := append([]AdjustmentItemInput(nil), in.Items...)
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		adjustment.Items = adjustment.Items[:0]
		for _, item := range items {
			stock, err := r.Stock.GetForUpdate(ctx, item.ProductID, in.WarehouseID)
			if err != nil {
				return err
			}
			systemQuantity := stock.Quantity
			delta := item.CountedQuantity - systemQuantity

			stock.Quantity = item.CountedQuantity
			if item.LocationID != nil {
				stock.LocationID = item.LocationID
			}
			stock.UpdatedAt = now
			if err := r.Stock.Upsert(ctx, stock); err != nil {
				return err
			}

			adjustment.Items = append(adjustment.Items, entity.StockAdjustmentItem{
				ID:              uuid.New().String(),
				AdjustmentID:    adjustment.ID,
				ProductID:       item.ProductID,
				CountedQuantity: item.CountedQuantity,
				SystemQuantity:  systemQuantity,
				LocationID:      item.LocationID,
			})

			entry := &entity.StockLedgerEntry{
				ID:             uuid.New().String(),
				ProductID:      item.ProductID,
				WarehouseID:    in.WarehouseID,
				LocationID:     item.LocationID,
				ChangeQuantity: delta,
				NewStockLevel:  item.CountedQuantity,
				DocumentType:   entity.DocumentTypeAdjustment,
				DocumentID:     adjustment.ID,
				Timestamp:      now,
				CreatedBy:      in.UserID,
			}
			if err := r.Ledger.Append(ctx, entry); err != nil {
				return err
			}
		}
		return r.Adjustments.Create(ctx, adjustment)
	})
	if err != nil {
		return nil, err
	}
	return adjustment, nil
}

// GetByID devuelve un ajuste con sus líneas.
func (uc *AdjustmentUseCase) GetByID(ctx context.Context, id string) (*entity.StockAdjustment, error) {
	adjustment, err := uc.adjustmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if adjustment == nil {
		return nil, domain.ErrNotFound
	}
	return adjustment, nil
}

// List devuelve ajustes paginados.
func (uc *AdjustmentUseCase) List(ctx context.Context, limit, offset int) ([]*entity.StockAdjustment, error) {
	return uc.adjustmentRepo.List(ctx, limit, offset)
}
