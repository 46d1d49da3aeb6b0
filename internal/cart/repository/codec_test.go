package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltshop/storefront/internal/cart/domain"
	catalog "github.com/voltshop/storefront/internal/catalog/domain"
	"github.com/voltshop/storefront/pkg/logger"
)

func init() {
	logger.Init("cart-repository-test", false)
}

func TestCartRoundTrip(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()

	var cart domain.Cart
	require.NoError(t, cart.Add(catalog.Product{ID: "1", Price: 1_200_000}, 2, "Carbon Black"))
	require.NoError(t, repo.Save(ctx, "sess-1", cart))

	loaded, err := repo.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "1", loaded.Items[0].ID)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.Equal(t, "Carbon Black", loaded.Items[0].SelectedColor)
}

func TestLoadUnknownSessionReturnsEmptyCart(t *testing.T) {
	repo := NewMemoryCartRepository()

	cart, err := repo.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestLoadMalformedPayloadDegradesToEmptyCart(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()

	for name, payload := range map[string][]byte{
		"truncated json": []byte(`[{"id":"1","quantity":`),
		"wrong shape":    []byte(`{"not":"an array"}`),
		"plain garbage":  []byte(`!!!!`),
	} {
		repo.Put("sess-bad", payload)

		cart, err := repo.Load(ctx, "sess-bad")
		require.NoError(t, err, name)
		assert.True(t, cart.IsEmpty(), name)
	}
}

func TestClearRemovesCart(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()

	var cart domain.Cart
	require.NoError(t, cart.Add(catalog.Product{ID: "4", Price: 600_000}, 1, "Robot White"))
	require.NoError(t, repo.Save(ctx, "sess-2", cart))
	require.NoError(t, repo.Clear(ctx, "sess-2"))

	loaded, err := repo.Load(ctx, "sess-2")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
