package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eshop/internal/model"
	"eshop/internal/repository/memory"
)

func TestStoreCreateAndFind(t *testing.T) {
	store := memory.NewProductStore()
	ctx := context.Background()

	created, err := store.Create(ctx, &model.Product{ID: "p1", Name: "One", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "p1", created.ID)

	found, err := store.FindByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "One", found.Name)
}

func TestStoreFindByIDAbsent(t *testing.T) {
	store := memory.NewProductStore()

	found, err := store.FindByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestStoreFindAllInsertionOrder(t *testing.T) {
	store := memory.NewProductStore()
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := store.Create(ctx, &model.Product{ID: id, Name: id, Quantity: 1})
		require.NoError(t, err)
	}

	all, err := store.FindAll(ctx)
	require.NoError(t, err)

	require.Len(t, all, 3)
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p2", all[1].ID)
	assert.Equal(t, "p3", all[2].ID)
}

func TestStoreUpdate(t *testing.T) {
	store := memory.NewProductStore()
	ctx := context.Background()

	_, err := store.Create(ctx, &model.Product{ID: "p1", Name: "One", Quantity: 1})
	require.NoError(t, err)

	updated, err := store.Update(ctx, &model.Product{ID: "p1", Name: "Renamed", Quantity: 2})
	require.NoError(t, err)
	require.NotNil(t, updated)

	found, err := store.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)
	assert.Equal(t, 2, found.Quantity)
}

func TestStoreUpdateAbsent(t *testing.T) {
	store := memory.NewProductStore()

	updated, err := store.Update(context.Background(), &model.Product{ID: "missing", Name: "Ghost"})

	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestStoreSaveUpserts(t *testing.T) {
	store := memory.NewPaymentStore()
	ctx := context.Background()

	payment := &model.Payment{ID: "pay-1", Method: model.PaymentMethodVoucher, Status: model.PaymentStatusWaiting}
	_, err := store.Save(ctx, payment)
	require.NoError(t, err)

	payment.Status = model.PaymentStatusSuccess
	_, err = store.Save(ctx, payment)
	require.NoError(t, err)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, model.PaymentStatusSuccess, all[0].Status)
}

func TestStoreDeleteByID(t *testing.T) {
	store := memory.NewProductStore()
	ctx := context.Background()

	_, err := store.Create(ctx, &model.Product{ID: "p1", Name: "One", Quantity: 1})
	require.NoError(t, err)
	_, err = store.Create(ctx, &model.Product{ID: "p2", Name: "Two", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, store.DeleteByID(ctx, "p1"))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "p2", all[0].ID)
}

func TestOrderStoreFindAllByAuthor(t *testing.T) {
	store := memory.NewOrderStore()
	ctx := context.Background()

	_, err := store.Create(ctx, model.NewOrder("o1", nil, 1, "alice"))
	require.NoError(t, err)
	_, err = store.Create(ctx, model.NewOrder("o2", nil, 2, "bob"))
	require.NoError(t, err)

	orders, err := store.FindAllByAuthor(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
}
