package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore hace de base de datos y los repos operan sobre
// él. El TxRunner de test ejecuta la función directamente; para el aislamiento
// basta con que los casos de uso aborten antes de mutar (pre-flight).
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct {
	productID   string
	warehouseID string
}

type memStore struct {
	products    map[string]*entity.Product
	warehouses  map[string]*entity.Warehouse
	locations   map[string]*entity.Location
	suppliers   map[string]*entity.Supplier
	stocks      map[stockKey]*entity.StockLevel
	ledger      []*entity.StockLedgerEntry
	receipts    map[string]*entity.Receipt
	deliveries  map[string]*entity.DeliveryOrder
	transfers   map[string]*entity.InternalTransfer
	adjustments map[string]*entity.StockAdjustment
}

func newMemStore() *memStore {
	return &memStore{
		products:    make(map[string]*entity.Product),
		warehouses:  make(map[string]*entity.Warehouse),
		locations:   make(map[string]*entity.Location),
		suppliers:   make(map[string]*entity.Supplier),
		stocks:      make(map[stockKey]*entity.StockLevel),
		receipts:    make(map[string]*entity.Receipt),
		deliveries:  make(map[string]*entity.DeliveryOrder),
		transfers:   make(map[string]*entity.InternalTransfer),
		adjustments: make(map[string]*entity.StockAdjustment),
	}
}

func (s *memStore) addProduct(id string) {
	s.products[id] = &entity.Product{ID: id, Name: "producto " + id, SKU: "SKU-" + id}
}

func (s *memStore) addWarehouse(id string) {
	s.warehouses[id] = &entity.Warehouse{ID: id, Name: "bodega " + id}
}

func (s *memStore) addSupplier(id string) {
	s.suppliers[id] = &entity.Supplier{ID: id, Name: "proveedor " + id}
}

// setStock siembra una fila de stock directamente.
func (s *memStore) setStock(productID, warehouseID string, quantity int64) {
	s.stocks[stockKey{productID, warehouseID}] = &entity.StockLevel{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		UpdatedAt:   time.Now(),
	}
}

func (s *memStore) quantity(productID, warehouseID string) int64 {
	if level, ok := s.stocks[stockKey{productID, warehouseID}]; ok {
		return level.Quantity
	}
	return 0
}

// ledgerSum suma los deltas del libro para una llave.
func (s *memStore) ledgerSum(productID, warehouseID string) int64 {
	var sum int64
	for _, e := range s.ledger {
		if e.ProductID == productID && e.WarehouseID == warehouseID {
			sum += e.ChangeQuantity
		}
	}
	return sum
}

// ── Stock ────────────────────────────────────────────────────────────────────

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(_ context.Context, productID, warehouseID string) (*entity.StockLevel, error) {
	level, ok := r.s.stocks[stockKey{productID, warehouseID}]
	if !ok {
		return nil, nil
	}
	cp := *level
	return &cp, nil
}

func (r *memStockRepo) GetForUpdate(_ context.Context, productID, warehouseID string) (*entity.StockLevel, error) {
	key := stockKey{productID, warehouseID}
	if _, ok := r.s.stocks[key]; !ok {
		r.s.stocks[key] = &entity.StockLevel{ProductID: productID, WarehouseID: warehouseID}
	}
	cp := *r.s.stocks[key]
	return &cp, nil
}

func (r *memStockRepo) Upsert(_ context.Context, level *entity.StockLevel) error {
	cp := *level
	r.s.stocks[stockKey{level.ProductID, level.WarehouseID}] = &cp
	return nil
}

func (r *memStockRepo) List(_ context.Context, filter repository.StockLevelFilter, limit, offset int) ([]*entity.StockLevel, error) {
	var out []*entity.StockLevel
	for _, level := range r.s.stocks {
		if filter.ProductID != "" && level.ProductID != filter.ProductID {
			continue
		}
		if filter.WarehouseID != "" && level.WarehouseID != filter.WarehouseID {
			continue
		}
		cp := *level
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].WarehouseID < out[j].WarehouseID
	})
	return page(out, limit, offset), nil
}

// ── Libro mayor ──────────────────────────────────────────────────────────────

type memLedgerRepo struct{ s *memStore }

func (r *memLedgerRepo) Append(_ context.Context, entry *entity.StockLedgerEntry) error {
	cp := *entry
	r.s.ledger = append(r.s.ledger, &cp)
	return nil
}

func (r *memLedgerRepo) List(_ context.Context, filter repository.LedgerFilter, limit, offset int) ([]*entity.StockLedgerEntry, error) {
	var out []*entity.StockLedgerEntry
	// Más reciente primero: el slice se llena en orden de inserción.
	for i := len(r.s.ledger) - 1; i >= 0; i-- {
		e := r.s.ledger[i]
		if filter.ProductID != "" && e.ProductID != filter.ProductID {
			continue
		}
		if filter.WarehouseID != "" && e.WarehouseID != filter.WarehouseID {
			continue
		}
		if filter.DocumentType != "" && e.DocumentType != filter.DocumentType {
			continue
		}
		if filter.DocumentID != "" && e.DocumentID != filter.DocumentID {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return page(out, limit, offset), nil
}

func (r *memLedgerRepo) SumByKey(_ context.Context, productID, warehouseID string) (int64, error) {
	return r.s.ledgerSum(productID, warehouseID), nil
}

// ── Documentos ───────────────────────────────────────────────────────────────

type memReceiptRepo struct{ s *memStore }

func (r *memReceiptRepo) Create(_ context.Context, receipt *entity.Receipt) error {
	r.s.receipts[receipt.ID] = receipt
	return nil
}

func (r *memReceiptRepo) GetByID(_ context.Context, id string) (*entity.Receipt, error) {
	return r.s.receipts[id], nil
}

func (r *memReceiptRepo) GetForUpdate(_ context.Context, id string) (*entity.Receipt, error) {
	return r.s.receipts[id], nil
}

func (r *memReceiptRepo) List(_ context.Context, limit, offset int) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, receipt := range r.s.receipts {
		out = append(out, receipt)
	}
	return page(out, limit, offset), nil
}

func (r *memReceiptRepo) MarkDone(_ context.Context, id string, validatedAt time.Time) error {
	receipt := r.s.receipts[id]
	receipt.Status = entity.StatusDone
	receipt.ValidatedAt = &validatedAt
	return nil
}

type memDeliveryRepo struct{ s *memStore }

func (r *memDeliveryRepo) Create(_ context.Context, delivery *entity.DeliveryOrder) error {
	r.s.deliveries[delivery.ID] = delivery
	return nil
}

func (r *memDeliveryRepo) GetByID(_ context.Context, id string) (*entity.DeliveryOrder, error) {
	return r.s.deliveries[id], nil
}

func (r *memDeliveryRepo) GetForUpdate(_ context.Context, id string) (*entity.DeliveryOrder, error) {
	return r.s.deliveries[id], nil
}

func (r *memDeliveryRepo) List(_ context.Context, limit, offset int) ([]*entity.DeliveryOrder, error) {
	var out []*entity.DeliveryOrder
	for _, delivery := range r.s.deliveries {
		out = append(out, delivery)
	}
	return page(out, limit, offset), nil
}

func (r *memDeliveryRepo) MarkDone(_ context.Context, id string, validatedAt time.Time) error {
	delivery := r.s.deliveries[id]
	delivery.Status = entity.StatusDone
	delivery.ValidatedAt = &validatedAt
	return nil
}

type memTransferRepo struct{ s *memStore }

func (r *memTransferRepo) Create(_ context.Context, transfer *entity.InternalTransfer) error {
	r.s.transfers[transfer.ID] = transfer
	return nil
}

func (r *memTransferRepo) GetByID(_ context.Context, id string) (*entity.InternalTransfer, error) {
	return r.s.transfers[id], nil
}

func (r *memTransferRepo) GetForUpdate(_ context.Context, id string) (*entity.InternalTransfer, error) {
	return r.s.transfers[id], nil
}

func (r *memTransferRepo) List(_ context.Context, limit, offset int) ([]*entity.InternalTransfer, error) {
	var out []*entity.InternalTransfer
	for _, transfer := range r.s.transfers {
		out = append(out, transfer)
	}
	return page(out, limit, offset), nil
}

func (r *memTransferRepo) MarkDone(_ context.Context, id string, completedAt time.Time) error {
	transfer := r.s.transfers[id]
	transfer.Status = entity.StatusDone
	transfer.CompletedAt = &completedAt
	return nil
}

type memAdjustmentRepo struct{ s *memStore }

func (r *memAdjustmentRepo) Create(_ context.Context, adjustment *entity.StockAdjustment) error {
	r.s.adjustments[adjustment.ID] = adjustment
	return nil
}

func (r *memAdjustmentRepo) GetByID(_ context.Context, id string) (*entity.StockAdjustment, error) {
	return r.s.adjustments[id], nil
}

func (r *memAdjustmentRepo) List(_ context.Context, limit, offset int) ([]*entity.StockAdjustment, error) {
	var out []*entity.StockAdjustment
	for _, adjustment := range r.s.adjustments {
		out = append(out, adjustment)
	}
	return page(out, limit, offset), nil
}

// ── Catálogo ─────────────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.products[product.ID] = product
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.s.products[id], nil
}

func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, product := range r.s.products {
		if product.SKU == sku {
			return product, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.products[product.ID] = product
	return nil
}

func (r *memProductRepo) List(_ context.Context, _ repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, product := range r.s.products {
		out = append(out, product)
	}
	return page(out, limit, offset), nil
}

type memWarehouseRepo struct{ s *memStore }

func (r *memWarehouseRepo) Create(_ context.Context, warehouse *entity.Warehouse) error {
	r.s.warehouses[warehouse.ID] = warehouse
	return nil
}

func (r *memWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return r.s.warehouses[id], nil
}

func (r *memWarehouseRepo) List(_ context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, warehouse := range r.s.warehouses {
		out = append(out, warehouse)
	}
	return page(out, limit, offset), nil
}

func (r *memWarehouseRepo) CreateLocation(_ context.Context, location *entity.Location) error {
	r.s.locations[location.ID] = location
	return nil
}

func (r *memWarehouseRepo) GetLocationByID(_ context.Context, id string) (*entity.Location, error) {
	return r.s.locations[id], nil
}

func (r *memWarehouseRepo) ListLocations(_ context.Context, warehouseID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, location := range r.s.locations {
		if location.WarehouseID == warehouseID {
			out = append(out, location)
		}
	}
	return out, nil
}

type memSupplierRepo struct{ s *memStore }

func (r *memSupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	r.s.suppliers[supplier.ID] = supplier
	return nil
}

func (r *memSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}

func (r *memSupplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, supplier := range r.s.suppliers {
		out = append(out, supplier)
	}
	return page(out, limit, offset), nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// memTxRunner ejecuta el callback directamente sobre el store.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(r repository.TxRepos) error) error {
	return fn(repository.TxRepos{
		Stock:       &memStockRepo{t.s},
		Ledger:      &memLedgerRepo{t.s},
		Receipts:    &memReceiptRepo{t.s},
		Deliveries:  &memDeliveryRepo{t.s},
		Transfers:   &memTransferRepo{t.s},
		Adjustments: &memAdjustmentRepo{t.s},
	})
}

// env agrupa el store y los casos de uso ya cableados para los tests.
type env struct {
	store       *memStore
	receipts    *inventory.ReceiptUseCase
	deliveries  *inventory.DeliveryUseCase
	transfers   *inventory.TransferUseCase
	adjustments *inventory.AdjustmentUseCase
	stock       *inventory.StockQueryUseCase
}

func newEnv() *env {
	s := newMemStore()
	tx := &memTxRunner{s}
	products := &memProductRepo{s}
	warehouses := &memWarehouseRepo{s}
	suppliers := &memSupplierRepo{s}
	return &env{
		store:       s,
		receipts:    inventory.NewReceiptUseCase(tx, &memReceiptRepo{s}, products, warehouses, suppliers),
		deliveries:  inventory.NewDeliveryUseCase(tx, &memDeliveryRepo{s}, products, warehouses),
		transfers:   inventory.NewTransferUseCase(tx, &memTransferRepo{s}, products, warehouses),
		adjustments: inventory.NewAdjustmentUseCase(tx, &memAdjustmentRepo{s}, products, warehouses),
		stock:       inventory.NewStockQueryUseCase(&memStockRepo{s}, &memLedgerRepo{s}),
	}
}

func page[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
