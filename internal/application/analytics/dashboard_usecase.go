// Package analytics contiene el caso de uso de los KPIs del tablero de
// inventario.
package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// DashboardUseCase arma los KPIs de inventario: total en stock, quiebres y
// documentos pendientes por tipo.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetKPIs construye el DashboardKPIsDTO con los filtros indicados.
//
// Dos llamadas en paralelo:
//  1. GetStockKPIs      → total, bajo stock (0 < qty <= reorder), agotados
//  2. GetPendingDocuments → documentos en Draft/Waiting/Ready por tipo
func (uc *DashboardUseCase) GetKPIs(ctx context.Context, filter repository.DashboardFilter) (*dto.DashboardKPIsDTO, error) {
	type stockResult struct {
		kpis *repository.StockKPIs
		err  error
	}
	type pendingResult struct {
		pending *repository.PendingDocuments
		err     error
	}

	stockCh := make(chan stockResult, 1)
	pendingCh := make(chan pendingResult, 1)

	go func() {
		kpis, err := uc.dashboardRepo.GetStockKPIs(ctx, filter)
		stockCh <- stockResult{kpis, err}
	}()
	go func() {
		pending, err := uc.dashboardRepo.GetPendingDocuments(ctx, filter.WarehouseID)
		pendingCh <- pendingResult{pending, err}
	}()

	stock := <-stockCh
	pending := <-pendingCh

	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: KPIs de stock: %w", stock.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: documentos pendientes: %w", pending.err)
	}

	return &dto.DashboardKPIsDTO{
		TotalProductsInStock:       stock.kpis.TotalQuantity,
		LowStockItems:              stock.kpis.LowStock,
		OutOfStockItems:            stock.kpis.OutOfStock,
		PendingReceipts:            pending.pending.Receipts,
		PendingDeliveries:          pending.pending.Deliveries,
		InternalTransfersScheduled: pending.pending.Transfers,
	}, nil
}
