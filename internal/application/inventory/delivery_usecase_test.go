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

func seedDeliveryEnv(e *env) {
	e.store.addProduct("p1")
	e.store.addProduct("p2")
	e.store.addWarehouse("w1")
	e.store.addSupplier("s1")
}

func createDelivery(t *testing.T, e *env, items ...inventory.DeliveryItemInput) *entity.DeliveryOrder {
	t.Helper()
	delivery, err := e.deliveries.Create(context.Background(), inventory.CreateDeliveryInput{
		WarehouseID: "w1",
		UserID:      "u1",
		Items:       items,
	})
	require.NoError(t, err)
	return delivery
}

func TestDelivery_Validate_DescuentaStock(t *testing.T) {
	e := newEnv()
	seedDeliveryEnv(e)
	e.store.setStock("p1", "w1", 100)

	delivery := createDelivery(t, e, inventory.DeliveryItemInput{ProductID: "p1", Quantity: 30})

	done, err := e.deliveries.Validate(context.Background(), delivery.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDone, done.Status)
	assert.EqualValues(t, 70, e.store.quantity("p1", "w1"))

	require.Len(t, e.store.ledger, 1)
	assert.EqualValues(t, -30, e.store.ledger[0].ChangeQuantity)
	assert.EqualValues(t, 70, e.store.ledger[0].NewStockLevel)
	assert.Equal(t, entity.DocumentTypeDelivery, e.store.ledger[0].DocumentType)
}

func TestDelivery_Validate_StockInsuficienteSinEfectoParcial(t *testing.T) {
	e := newEnv()
	seedDeliveryEnv(e)
	e.store.setStock("p1", "w1", 100)
	e.store.setStock("p2", "w1", 5)

	// p1 alcanza, p2 no: la validación debe fallar sin descontar nada.
	delivery := createDelivery(t, e,
		inventory.DeliveryItemInput{ProductID: "p1", Quantity: 30},
		inventory.DeliveryItemInput{ProductID: "p2", Quantity: 10},
	)

	_, err := e.deliveries.Validate(context.Background(), delivery.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "p2", insufficient.ProductID)
	assert.EqualValues(t, 5, insufficient.Available)
	assert.EqualValues(t, 10, insufficient.Required)

	// Todo-o-nada: ni stock ni libro ni estado cambian.
	assert.EqualValues(t, 100, e.store.quantity("p1", "w1"))
	assert.EqualValues(t, 5, e.store.quantity("p2", "w1"))
	assert.Empty(t, e.store.ledger)
	assert.Equal(t, entity.StatusDraft, e.store.deliveries[delivery.ID].Status)
}

func TestDelivery_Validate_CantidadExactaDejaCero(t *testing.T) {
	e := newEnv()
	seedDeliveryEnv(e)
	e.store.setStock("p1", "w1", 30)

	delivery := createDelivery(t, e, inventory.DeliveryItemInput{ProductID: "p1", Quantity: 30})

	_, err := e.deliveries.Validate(context.Background(), delivery.ID)
	require.NoError(t, err, "available == required debe pasar")
	assert.Zero(t, e.store.quantity("p1", "w1"))
}

func TestDelivery_Validate_LineasRepetidasAcumulan(t *testing.T) {
	// Dos líneas del mismo producto: el requerido es la suma, no cada línea
	// contra la misma foto de stock.
	e := newEnv()
	seedDeliveryEnv(e)
	e.store.setStock("p1", "w1", 50)

	delivery := createDelivery(t, e,
		inventory.DeliveryItemInput{ProductID: "p1", Quantity: 30},
		inventory.DeliveryItemInput{ProductID: "p1", Quantity: 30},
	)

	_, err := e.deliveries.Validate(context.Background(), delivery.ID)
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.EqualValues(t, 60, insufficient.Required)
	assert.EqualValues(t, 50, e.store.quantity("p1", "w1"))
}

func TestDelivery_Validate_ProductoSinFilaDeStock(t *testing.T) {
	// Producto jamás movido en la bodega: disponible 0, rechazo limpio.
	e := newEnv()
	seedDeliveryEnv(e)

	delivery := createDelivery(t, e, inventory.DeliveryItemInput{ProductID: "p1", Quantity: 1})

	_, err := e.deliveries.Validate(context.Background(), delivery.ID)
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Zero(t, insufficient.Available)
}

func TestDelivery_EscenarioRecepcionEntregaRechazo(t *testing.T) {
	// Recepción de 100 → entrega de 30 → entrega de 1000 rechazada; quedan 70.
	e := newEnv()
	seedDeliveryEnv(e)

	receipt, err := e.receipts.Create(context.Background(), inventory.CreateReceiptInput{
		SupplierID:  "s1",
		WarehouseID: "w1",
		UserID:      "u1",
		Items:       []inventory.ReceiptItemInput{{ProductID: "p1", Quantity: 100}},
	})
	require.NoError(t, err)
	_, err = e.receipts.Validate(context.Background(), receipt.ID)
	require.NoError(t, err)

	ok := createDelivery(t, e, inventory.DeliveryItemInput{ProductID: "p1", Quantity: 30})
	_, err = e.deliveries.Validate(context.Background(), ok.ID)
	require.NoError(t, err)

	tooBig := createDelivery(t, e, inventory.DeliveryItemInput{ProductID: "p1", Quantity: 1000})
	_, err = e.deliveries.Validate(context.Background(), tooBig.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.EqualValues(t, 70, e.store.quantity("p1", "w1"))
	// El libro concilia con el nivel vigente.
	balance, err := e.stock.LedgerBalance(context.Background(), "p1", "w1")
	require.NoError(t, err)
	assert.EqualValues(t, 70, balance)
}

func TestDelivery_Validate_SegundaVezFalla(t *testing.T) {
	e := newEnv()
	seedDeliveryEnv(e)
	e.store.setStock("p1", "w1", 100)

	delivery := createDelivery(t, e, inventory.DeliveryItemInput{ProductID: "p1", Quantity: 10})

	_, err := e.deliveries.Validate(context.Background(), delivery.ID)
	require.NoError(t, err)

	_, err = e.deliveries.Validate(context.Background(), delivery.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
	assert.EqualValues(t, 90, e.store.quantity("p1", "w1"), "el segundo intento no descuenta")
}
