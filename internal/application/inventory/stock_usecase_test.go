package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

func TestStockQuery_GetQuantity_LlaveSinFilaEsCero(t *testing.T) {
	e := newEnv()
	quantity, err := e.stock.GetQuantity(context.Background(), "p1", "w1")
	require.NoError(t, err)
	assert.Zero(t, quantity, "llave sin fila equivale a cantidad cero")
}

func TestStockQuery_GetQuantity_DevuelveNivelVigente(t *testing.T) {
	e := newEnv()
	e.store.setStock("p1", "w1", 42)

	quantity, err := e.stock.GetQuantity(context.Background(), "p1", "w1")
	require.NoError(t, err)
	assert.EqualValues(t, 42, quantity)
}

func TestStockQuery_ListLedger_MasRecientePrimero(t *testing.T) {
	e := newEnv()
	e.store.addProduct("p1")
	e.store.addWarehouse("w1")
	e.store.addSupplier("s1")

	// Dos recepciones validadas en orden: el listado llega invertido.
	for _, qty := range []int64{10, 20} {
		receipt, err := e.receipts.Create(context.Background(), inventory.CreateReceiptInput{
			SupplierID:  "s1",
			WarehouseID: "w1",
			UserID:      "u1",
			Items:       []inventory.ReceiptItemInput{{ProductID: "p1", Quantity: qty}},
		})
		require.NoError(t, err)
		_, err = e.receipts.Validate(context.Background(), receipt.ID)
		require.NoError(t, err)
	}

	entries, err := e.stock.ListLedger(context.Background(), repository.LedgerFilter{ProductID: "p1"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.EqualValues(t, 20, entries[0].ChangeQuantity, "el asiento más nuevo va primero")
	assert.EqualValues(t, 10, entries[1].ChangeQuantity)
	assert.EqualValues(t, 30, entries[0].NewStockLevel)
}

func TestStockQuery_LedgerBalance_ConciliaConElNivel(t *testing.T) {
	e := newEnv()
	e.store.addProduct("p1")
	e.store.addWarehouse("w1")
	e.store.addSupplier("s1")

	receipt, err := e.receipts.Create(context.Background(), inventory.CreateReceiptInput{
		SupplierID:  "s1",
		WarehouseID: "w1",
		UserID:      "u1",
		Items:       []inventory.ReceiptItemInput{{ProductID: "p1", Quantity: 25}},
	})
	require.NoError(t, err)
	_, err = e.receipts.Validate(context.Background(), receipt.ID)
	require.NoError(t, err)

	balance, err := e.stock.LedgerBalance(context.Background(), "p1", "w1")
	require.NoError(t, err)
	assert.EqualValues(t, 25, balance)

	// Llave sin asientos: saldo cero.
	empty, err := e.stock.LedgerBalance(context.Background(), "p1", "w9")
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestStockQuery_ListLedger_FiltraPorDocumento(t *testing.T) {
	e := newEnv()
	e.store.addProduct("p1")
	e.store.addWarehouse("w1")
	e.store.addWarehouse("w2")
	e.store.addSupplier("s1")
	e.store.setStock("p1", "w1", 100)

	transfer, err := e.transfers.Create(context.Background(), inventory.CreateTransferInput{
		FromWarehouseID: "w1",
		ToWarehouseID:   "w2",
		UserID:          "u1",
		Items:           []inventory.TransferItemInput{{ProductID: "p1", Quantity: 10}},
	})
	require.NoError(t, err)
	_, err = e.transfers.Complete(context.Background(), transfer.ID)
	require.NoError(t, err)

	entries, err := e.stock.ListLedger(context.Background(), repository.LedgerFilter{DocumentID: transfer.ID}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "un traslado deja salida y entrada")

	byWarehouse, err := e.stock.ListLedger(context.Background(), repository.LedgerFilter{WarehouseID: "w2"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, byWarehouse, 1)
	assert.EqualValues(t, 10, byWarehouse[0].ChangeQuantity)
}

func TestStockQuery_ListStockLevels_Filtra(t *testing.T) {
	e := newEnv()
	e.store.setStock("p1", "w1", 5)
	e.store.setStock("p1", "w2", 7)
	e.store.setStock("p2", "w1", 9)

	levels, err := e.stock.ListStockLevels(context.Background(), repository.StockLevelFilter{WarehouseID: "w1"}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, levels, 2)

	levels, err = e.stock.ListStockLevels(context.Background(), repository.StockLevelFilter{ProductID: "p1", WarehouseID: "w2"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.EqualValues(t, 7, levels[0].Quantity)
}
