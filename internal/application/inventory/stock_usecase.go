package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// StockQueryUseCase lecturas sobre niveles de stock y libro mayor.
// Sin efectos secundarios; no bloquea escritores.
type StockQueryUseCase struct {
	stockRepo  repository.StockLevelRepository
	ledgerRepo repository.LedgerRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(
	stockRepo repository.StockLevelRepository,
	ledgerRepo repository.LedgerRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, ledgerRepo: ledgerRepo}
}

// GetQuantity devuelve la cantidad actual de un producto en una bodega.
// Una llave sin fila equivale a cantidad cero.
func (uc *StockQueryUseCase) GetQuantity(ctx context.Context, productID, warehouseID string) (int64, error) {
	stock, err := uc.stockRepo.Get(ctx, productID, warehouseID)
	if err != nil {
		return 0, err
	}
	if stock == nil {
		return 0, nil
	}
	return stock.Quantity, nil
}

// ListStockLevels lista niveles con filtros por producto, bodega, ubicación o
// categoría.
func (uc *StockQueryUseCase) ListStockLevels(ctx context.Context, filter repository.StockLevelFilter, limit, offset int) ([]*entity.StockLevel, error) {
	return uc.stockRepo.List(ctx, filter, limit, offset)
}

// LedgerBalance suma los deltas del libro mayor para una llave
// (producto, bodega). Con un libro íntegro coincide con el nivel vigente;
// una discrepancia delata un asiento perdido o manipulado.
func (uc *StockQueryUseCase) LedgerBalance(ctx context.Context, productID, warehouseID string) (int64, error) {
	return uc.ledgerRepo.SumByKey(ctx, productID, warehouseID)
}

// ListLedger lista asientos del libro mayor, del más reciente al más antiguo.
func (uc *StockQueryUseCase) ListLedger(ctx context.Context, filter repository.LedgerFilter, limit, offset int) ([]*entity.StockLedgerEntry, error) {
	return uc.ledgerRepo.List(ctx, filter, limit, offset)
}
