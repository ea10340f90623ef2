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

// ReceiptUseCase crea y valida recepciones de mercancía.
// La validación es la transición que muta stock: suma cada línea a la bodega
// y deja un asiento positivo por línea en el libro mayor, todo en una
// transacción con bloqueo de fila (SELECT FOR UPDATE).
type ReceiptUseCase struct {
	txRunner      TxRunner
	receiptRepo   repository.ReceiptRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	txRunner TxRunner,
	receiptRepo repository.ReceiptRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		txRunner:      txRunner,
		receiptRepo:   receiptRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
	}
}

// ReceiptItemInput línea de entrada para crear una recepción.
type ReceiptItemInput struct {
	ProductID string
	Quantity  int64
}

// CreateReceiptInput entrada para crear una recepción en borrador.
type CreateReceiptInput struct {
	SupplierID  string
	WarehouseID string
	Status      entity.DocumentStatus // vacío = Draft; Done/Canceled se rechazan
	UserID      string
	Items       []ReceiptItemInput
}

// Create registra una recepción con sus líneas. No toca stock: eso ocurre en
// Validate.
func (uc *ReceiptUseCase) Create(ctx context.Context, in CreateReceiptInput) (*entity.Receipt, error) {
	status, err := initialStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if in.SupplierID == "" || in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
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

	receipt := &entity.Receipt{
		ID:          uuid.New().String(),
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Status:      status,
		CreatedAt:   time.Now(),
		CreatedBy:   in.UserID,
	}
	for _, item := range in.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			ID:               uuid.New().String(),
			ReceiptID:        receipt.ID,
			ProductID:        item.ProductID,
			QuantityReceived: item.Quantity,
		})
	}

	err = uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		return r.Receipts.Create(ctx, receipt)
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Validate ejecuta la transición de completado de la recepción: bloquea la
// cabecera, verifica la guarda Done/Canceled, suma stock por línea y deja un
// asiento por línea. La recepción es incondicional: no hay chequeo de
// disponibilidad para stock entrante.
func (uc *ReceiptUseCase) Validate(ctx context.Context, id string) (*entity.Receipt, error) {
	var out *entity.Receipt
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		receipt, err := r.Receipts.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if receipt == nil {
			return domain.ErrNotFound
		}
		if err := receipt.Status.CanComplete(); err != nil {
			return err
		}

		now := time.Now()

		// Orden determinista de bloqueo por producto.
		items := append([]entity.ReceiptItem(nil), receipt.Items...)
		sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

		for _, item := range items {
			stock, err := r.Stock.GetForUpdate(ctx, item.ProductID, receipt.WarehouseID)
			if err != nil {
				return err
			}
			stock.Quantity += item.QuantityReceived
			stock.UpdatedAt = now
			if err := r.Stock.Upsert(ctx, stock); err != nil {
				return err
			}
			entry := &entity.StockLedgerEntry{
				ID:             uuid.New().String(),
				ProductID:      item.ProductID,
				WarehouseID:    receipt.WarehouseID,
				ChangeQuantity: item.QuantityReceived,
				NewStockLevel:  stock.Quantity,
				DocumentType:   entity.DocumentTypeReceipt,
				DocumentID:     receipt.ID,
				Timestamp:      now,
				CreatedBy:      receipt.CreatedBy,
			}
			if err := r.Ledger.Append(ctx, entry); err != nil {
				return err
			}
		}

		if err := r.Receipts.MarkDone(ctx, receipt.ID, now); err != nil {
			return err
		}
		receipt.Status = entity.StatusDone
		receipt.ValidatedAt = &now
		out = receipt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve una recepción con sus líneas.
func (uc *ReceiptUseCase) GetByID(ctx context.Context, id string) (*entity.Receipt, error) {
	receipt, err := uc.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	return receipt, nil
}

// List devuelve recepciones paginadas.
func (uc *ReceiptUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Receipt, error) {
	return uc.receiptRepo.List(ctx, limit, offset)
}
