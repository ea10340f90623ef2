package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/analytics"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// fakeDashboardRepo devuelve respuestas fijas y registra los filtros recibidos.
type fakeDashboardRepo struct {
	kpis    *repository.StockKPIs
	pending *repository.PendingDocuments
	kpisErr error

	gotFilter    repository.DashboardFilter
	gotWarehouse string
}

func (f *fakeDashboardRepo) GetStockKPIs(_ context.Context, filter repository.DashboardFilter) (*repository.StockKPIs, error) {
	f.gotFilter = filter
	if f.kpisErr != nil {
		return nil, f.kpisErr
	}
	return f.kpis, nil
}

func (f *fakeDashboardRepo) GetPendingDocuments(_ context.Context, warehouseID string) (*repository.PendingDocuments, error) {
	f.gotWarehouse = warehouseID
	return f.pending, nil
}

func TestDashboard_GetKPIs_CombinaAmbasConsultas(t *testing.T) {
	repo := &fakeDashboardRepo{
		kpis:    &repository.StockKPIs{TotalQuantity: 1250, LowStock: 4, OutOfStock: 2},
		pending: &repository.PendingDocuments{Receipts: 3, Deliveries: 5, Transfers: 1},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetKPIs(context.Background(), repository.DashboardFilter{WarehouseID: "w1"})
	require.NoError(t, err)

	assert.EqualValues(t, 1250, out.TotalProductsInStock)
	assert.EqualValues(t, 4, out.LowStockItems)
	assert.EqualValues(t, 2, out.OutOfStockItems)
	assert.EqualValues(t, 3, out.PendingReceipts)
	assert.EqualValues(t, 5, out.PendingDeliveries)
	assert.EqualValues(t, 1, out.InternalTransfersScheduled)

	// El filtro de bodega llega a ambas consultas.
	assert.Equal(t, "w1", repo.gotFilter.WarehouseID)
	assert.Equal(t, "w1", repo.gotWarehouse)
}

func TestDashboard_GetKPIs_PropagaError(t *testing.T) {
	repo := &fakeDashboardRepo{
		kpisErr: errors.New("boom"),
		pending: &repository.PendingDocuments{},
	}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetKPIs(context.Background(), repository.DashboardFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KPIs de stock")
}
