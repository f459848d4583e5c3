package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/organicstore/storefront/cart/internal/engine"
	"github.com/organicstore/storefront/catalog/pkg/response"
	"github.com/organicstore/storefront/internal/store"
)

func product(id int, price int64, stock int64) response.Product {
	return response.Product{
		ID:    id,
		Name:  "Producto",
		Price: decimal.NewFromInt(price),
		Stock: stock,
	}
}

func persistedItems(t *testing.T, kv store.KV) []engine.LineItem {
	t.Helper()

	raw, err := kv.Get(context.Background(), store.KEY_CART)
	if err != nil {
		t.Fatalf("failed reading persisted cart with error: %s", err)
	}
	items := []engine.LineItem{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		t.Fatalf("failed unmarshaling persisted cart with error: %s", err)
	}
	return items
}

func TestMutationsPersistItems(t *testing.T) {
	kv := store.NewMemoryKV()
	c := context.Background()
	svc := NewCartService(c, kv, "573225054512")

	svc.AddItem(c, product(1, 2500, 10), 2)
	assert.Len(t, persistedItems(t, kv), 1)
	assert.EqualValues(t, 2, persistedItems(t, kv)[0].Quantity)

	svc.UpdateQuantity(c, 1, 5)
	assert.EqualValues(t, 5, persistedItems(t, kv)[0].Quantity)

	svc.AddItem(c, product(2, 3000, 4), 1)
	assert.Len(t, persistedItems(t, kv), 2)

	svc.RemoveItem(c, 1)
	items := persistedItems(t, kv)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)

	svc.ClearCart(c)
	assert.Empty(t, persistedItems(t, kv))
}

func TestRestoreFromStore(t *testing.T) {
	kv := store.NewMemoryKV()
	c := context.Background()

	first := NewCartService(c, kv, "573225054512")
	first.AddItem(c, product(1, 2500, 10), 2)
	first.AddItem(c, product(2, 3000, 4), 1)

	second := NewCartService(c, kv, "573225054512")
	state := second.Snapshot()

	assert.Equal(t, first.Snapshot().Items, state.Items)
	assert.EqualValues(t, 3, state.TotalItems)
	assert.True(t, decimal.NewFromInt(8000).Equal(state.TotalPrice))
}

func TestRestoreIgnoresCorruptPayload(t *testing.T) {
	kv := store.NewMemoryKV()
	c := context.Background()
	err := kv.Set(c, store.KEY_CART, "{not json")
	assert.NoError(t, err)

	svc := NewCartService(c, kv, "573225054512")

	state := svc.Snapshot()
	assert.Empty(t, state.Items)
	assert.EqualValues(t, 0, state.TotalItems)
}

func TestRestoreMissingKeyStartsEmpty(t *testing.T) {
	svc := NewCartService(context.Background(), store.NewMemoryKV(), "573225054512")

	assert.Empty(t, svc.Snapshot().Items)
}

func TestGetItemQuantity(t *testing.T) {
	kv := store.NewMemoryKV()
	c := context.Background()
	svc := NewCartService(c, kv, "573225054512")
	svc.AddItem(c, product(1, 2500, 10), 3)

	assert.EqualValues(t, 3, svc.GetItemQuantity(1))
	assert.EqualValues(t, 0, svc.GetItemQuantity(99))
	assert.True(t, svc.IsInCart(1))
	assert.False(t, svc.IsInCart(99))
}

func TestLoadCartRoundTrip(t *testing.T) {
	kv := store.NewMemoryKV()
	c := context.Background()
	svc := NewCartService(c, kv, "573225054512")
	items := []engine.LineItem{
		{Product: product(1, 2500, 10), Quantity: 2},
		{Product: product(2, 3000, 4), Quantity: 1},
	}

	state := svc.LoadCart(c, items)

	assert.Equal(t, items, state.Items)
	assert.Equal(t, items, persistedItems(t, kv))
}
