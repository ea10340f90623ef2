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

// DeliveryUseCase crea y valida órdenes de entrega (stock saliente).
// Antes de mutar nada, la validación verifica disponibilidad de TODAS las
// líneas sobre filas ya bloqueadas; si una sola falla, no se escribe nada.
type DeliveryUseCase struct {
	txRunner      TxRunner
	deliveryRepo  repository.DeliveryRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	txRunner TxRunner,
	deliveryRepo repository.DeliveryRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		txRunner:      txRunner,
		deliveryRepo:  deliveryRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// DeliveryItemInput línea de entrada para crear una entrega.
type DeliveryItemInput struct {
	ProductID string
	Quantity  int64
}

// CreateDeliveryInput entrada para crear una orden de entrega.
type CreateDeliveryInput struct {
	WarehouseID string
	Status      entity.DocumentStatus
	UserID      string
	Items       []DeliveryItemInput
}

// Create registra una orden de entrega con sus líneas, sin tocar stock.
func (uc *DeliveryUseCase) Create(ctx context.Context, in CreateDeliveryInput) (*entity.DeliveryOrder, error) {
	status, err := initialStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
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

	delivery := &entity.DeliveryOrder{
		ID:          uuid.New().String(),
		WarehouseID: in.WarehouseID,
		Status:      status,
		CreatedAt:   time.Now(),
		CreatedBy:   in.UserID,
	}
	for _, item := range in.Items {
		delivery.Items = append(delivery.Items, entity.DeliveryOrderItem{
			ID:                uuid.New().String(),
			DeliveryOrderID:   delivery.ID,
			ProductID:         item.ProductID,
			QuantityDelivered: item.Quantity,
		})
	}

	err = uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		return r.Deliveries.Create(ctx, delivery)
	})
	if err != nil {
		return nil, err
	}
	return delivery, nil
}

// Validate ejecuta la transición de completado de la entrega.
//
// Pre-flight: bloquea la fila de stock de cada línea (orden determinista por
// producto) y exige quantity >= solicitado en todas; el primer faltante aborta
// con InsufficientStockError y la transacción se revierte sin rastro. Solo
// después de pasar todas las líneas se resta stock y se asienta el libro.
func (uc *DeliveryUseCase) Validate(ctx context.Context, id string) (*entity.DeliveryOrder, error) {
	var out *entity.DeliveryOrder
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		delivery, err := r.Deliveries.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if delivery == nil {
			return domain.ErrNotFound
		}
		if err := delivery.Status.CanComplete(); err != nil {
			return err
		}

		now := time.Now()

		items := append([]entity.DeliveryOrderItem(nil), delivery.Items...)
		sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

		// Pre-flight sobre filas bloqueadas: ninguna mutación hasta que todas
		// pasen. Las líneas repetidas de un mismo producto comparten fila, así
		// que el requerido se acumula por producto.
		stocks := make(map[string]*entity.StockLevel, len(items))
		required := make(map[string]int64, len(items))
		for _, item := range items {
			if _, ok := stocks[item.ProductID]; !ok {
				stock, err := r.Stock.GetForUpdate(ctx, item.ProductID, delivery.WarehouseID)
				if err != nil {
					return err
				}
				stocks[item.ProductID] = stock
			}
			required[item.ProductID] += item.QuantityDelivered
			if stocks[item.ProductID].Quantity < required[item.ProductID] {
				return &domain.InsufficientStockError{
					ProductID: item.ProductID,
					Available: stocks[item.ProductID].Quantity,
					Required:  required[item.ProductID],
				}
			}
		}

		for _, item := range items {
			stock := stocks[item.ProductID]
			stock.Quantity -= item.QuantityDelivered
			stock.UpdatedAt = now
			if err := r.Stock.Upsert(ctx, stock); err != nil {
				return err
			}
			entry := &entity.StockLedgerEntry{
				ID:             uuid.New().String(),
				ProductID:      item.ProductID,
				WarehouseID:    delivery.WarehouseID,
				ChangeQuantity: -item.QuantityDelivered,
				NewStockLevel:  stock.Quantity,
				DocumentType:   entity.DocumentTypeDelivery,
				DocumentID:     delivery.ID,
				Timestamp:      now,
				CreatedBy:      delivery.CreatedBy,
			}
			if err := r.Ledger.Append(ctx, entry); err != nil {
				return err
			}
		}

		if err := r.Deliveries.MarkDone(ctx, delivery.ID, now); err != nil {
			return err
		}
		delivery.Status = entity.StatusDone
		delivery.ValidatedAt = &now
		out = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve una orden de entrega con sus líneas.
func (uc *DeliveryUseCase) GetByID(ctx context.Context, id string) (*entity.DeliveryOrder, error) {
	delivery, err := uc.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrNotFound
	}
	return delivery, nil
}

// List devuelve órdenes de entrega paginadas.
func (uc *DeliveryUseCase) List(ctx context.Context, limit, offset int) ([]*entity.DeliveryOrder, error) {
	return uc.deliveryRepo.List(ctx, limit, offset)
}
