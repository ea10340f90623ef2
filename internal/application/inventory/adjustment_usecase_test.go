package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

func seedAdjustmentEnv(e *env) {
	e.store.addProduct("p1")
	e.store.addProduct("p2")
	e.store.addWarehouse("w1")
}

func TestAdjustment_Create_SobrescribeYAsientaDelta(t *testing.T) {
	// Sistema dice 50, el conteo físico dice 30: el stock queda en 30 y el
	// libro registra -20 con nivel resultante 30.
	e := newEnv()
	seedAdjustmentEnv(e)
	e.store.setStock("p1", "w1", 50)

	adjustment, err := e.adjustments.Create(context.Background(), inventory.CreateAdjustmentInput{
		WarehouseID: "w1",
		Reason:      "conteo físico semanal",
		UserID:      "u1",
		Items:       []inventory.AdjustmentItemInput{{ProductID: "p1", CountedQuantity: 30}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDone, adjustment.Status, "el ajuste nace completado")
	require.Len(t, adjustment.Items, 1)
	assert.EqualValues(t, 30, adjustment.Items[0].CountedQuantity)
	assert.EqualValues(t, 50, adjustment.Items[0].SystemQuantity,
		"la foto del sistema se toma al ejecutar, no al pedir")

	assert.EqualValues(t, 30, e.store.quantity("p1", "w1"))

	require.Len(t, e.store.ledger, 1)
	assert.EqualValues(t, -20, e.store.ledger[0].ChangeQuantity)
	assert.EqualValues(t, 30, e.store.ledger[0].NewStockLevel)
	assert.Equal(t, entity.DocumentTypeAdjustment, e.store.ledger[0].DocumentType)
	assert.Equal(t, adjustment.ID, e.store.ledger[0].DocumentID)
}

func TestAdjustment_Create_AjusteHaciaArriba(t *testing.T) {
	e := newEnv()
	seedAdjustmentEnv(e)
	e.store.setStock("p1", "w1", 10)

	_, err := e.adjustments.Create(context.Background(), inventory.CreateAdjustmentInput{
		WarehouseID: "w1",
		UserID:      "u1",
		Items:       []inventory.AdjustmentItemInput{{ProductID: "p1", CountedQuantity: 45}},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 45, e.store.quantity("p1", "w1"))
	require.Len(t, e.store.ledger, 1)
	assert.EqualValues(t, 35, e.store.ledger[0].ChangeQuantity)
}

func TestAdjustment_Create_ConteoIgualSistema(t *testing.T) {
	// Conteo == sistema: delta cero, pero el asiento queda como evidencia.
	e := newEnv()
	seedAdjustmentEnv(e)
	e.store.setStock("p1", "w1", 20)

	_, err := e.adjustments.Create(context.Background(), inventory.CreateAdjustmentInput{
		WarehouseID: "w1",
		UserID:      "u1",
		Items:       []inventory.AdjustmentItemInput{{ProductID: "p1", CountedQuantity: 20}},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 20, e.store.quantity("p1", "w1"))
	require.Len(t, e.store.ledger, 1)
	assert.Zero(t, e.store.ledger[0].ChangeQuantity)
}

func TestAdjustment_Create_ProductoNuncaMovido(t *testing.T) {
	// Ajustar un producto sin fila de stock crea la fila con el conteo.
	e := newEnv()
	seedAdjustmentEnv(e)

	adjustment, err := e.adjustments.Create(context.Background(), inventory.CreateAdjustmentInput{
		WarehouseID: "w1",
		UserID:      "u1",
		Items:       []inventory.AdjustmentItemInput{{ProductID: "p2", CountedQuantity: 12}},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 12, e.store.quantity("p2", "w1"))
	assert.Zero(t, adjustment.Items[0].SystemQuantity)
}

func TestAdjustment_Create_ActualizaUbicacion(t *testing.T) {
	e := newEnv()
	seedAdjustmentEnv(e)
	e.store.setStock("p1", "w1", 8)

	loc := "A-01"
	_, err := e.adjustments.Create(context.Background(), inventory.CreateAdjustmentInput{
		WarehouseID: "w1",
		UserID:      "u1",
		Items:       []inventory.AdjustmentItemInput{{ProductID: "p1", CountedQuantity: 8, LocationID: &loc}},
	})
	require.NoError(t, err)

	level := e.store.stocks[stockKey{"p1", "w1"}]
	require.NotNil(t, level.LocationID)
	assert.Equal(t, "A-01", *level.LocationID)
}

func TestAdjustment_Create_ConteoNegativoRechazado(t *testing.T) {
	e := newEnv()
	seedAdjustmentEnv(e)
	e.store.setStock("p1", "w1", 8)

	_, err := e.adjustments.Create(context.Background(), inventory.CreateAdjustmentInput{
		WarehouseID: "w1",
		UserID:      "u1",
		Items:       []inventory.AdjustmentItemInput{{ProductID: "p1", CountedQuantity: -3}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.EqualValues(t, 8, e.store.quantity("p1", "w1"))
}

func TestAdjustment_Create_ConteoCeroPermitido(t *testing.T) {
	e := newEnv()
	seedAdjustmentEnv(e)
	e.store.setStock("p1", "w1", 8)

	_, err := e.adjustments.Create(context.Background(), inventory.CreateAdjustmentInput{
		WarehouseID: "w1",
		UserID:      "u1",
		Items:       []inventory.AdjustmentItemInput{{ProductID: "p1", CountedQuantity: 0}},
	})
	require.NoError(t, err)
	assert.Zero(t, e.store.quantity("p1", "w1"))
}

func TestAdjustment_Create_ReferenciasInexistentes(t *testing.T) {
	e := newEnv()
	seedAdjustmentEnv(e)

	_, err := e.adjustments.Create(context.Background(), inventory.CreateAdjustmentInput{
		WarehouseID: "nope",
		UserID:      "u1",
		Items:       []inventory.AdjustmentItemInput{{ProductID: "p1", CountedQuantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.adjustments.Create(context.Background(), inventory.CreateAdjustmentInput{
		WarehouseID: "w1",
		UserID:      "u1",
		Items:       []inventory.AdjustmentItemInput{{ProductID: "nope", CountedQuantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
