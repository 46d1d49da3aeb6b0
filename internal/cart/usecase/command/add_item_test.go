package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltshop/storefront/internal/cart/domain"
	cartRepository "github.com/voltshop/storefront/internal/cart/repository"
	catalog "github.com/voltshop/storefront/internal/catalog/domain"
	catalogRepository "github.com/voltshop/storefront/internal/catalog/repository"
	"github.com/voltshop/storefront/pkg/logger"
)

func init() {
	logger.Init("cart-command-test", false)
}

func seededCatalog(t *testing.T) *catalogRepository.MemoryProductRepository {
	t.Helper()
	repo := catalogRepository.NewMemoryProductRepository()
	require.NoError(t, repo.Seed([]catalog.Product{
		{ID: "1", Name: "Iphone 15 ProMax", Price: 1_200_000, Images: []string{"/img/iphone-1.jpg", "/img/iphone-2.jpg"}},
		{ID: "4", Name: "Asus Zenbook 14", Price: 600_000, Images: []string{"/img/zenbook-1.jpg"}},
	}))
	return repo
}

func TestAddItemSnapshotsProductIntoCart(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	handler := NewAddItemHandler(carts, seededCatalog(t))
	ctx := context.Background()

	cart, err := handler.Handle(ctx, AddItemCommand{
		SessionID: "sess-1",
		ProductID: "1",
		Quantity:  1,
		Color:     "Carbon Black",
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Iphone 15 ProMax", cart.Items[0].Name)
	assert.Equal(t, int64(1_200_000), cart.Items[0].Price)

	// A second add of the same variant merges into the same line
	cart, err = handler.Handle(ctx, AddItemCommand{
		SessionID: "sess-1",
		ProductID: "1",
		Quantity:  2,
		Color:     "Carbon Black",
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	handler := NewAddItemHandler(carts, seededCatalog(t))
	ctx := context.Background()

	_, err := handler.Handle(ctx, AddItemCommand{SessionID: "s", ProductID: "1", Quantity: 0, Color: "Carbon Black"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = handler.Handle(ctx, AddItemCommand{SessionID: "s", ProductID: "1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrColorRequired)

	_, err = handler.Handle(ctx, AddItemCommand{SessionID: "s", ProductID: "999", Quantity: 1, Color: "Carbon Black"})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	// Nothing was persisted for the session
	cart, loadErr := carts.Load(ctx, "s")
	require.NoError(t, loadErr)
	assert.True(t, cart.IsEmpty())
}

func TestAddItemRejectsColorTheProductDoesNotOffer(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	handler := NewAddItemHandler(carts, seededCatalog(t))
	ctx := context.Background()

	// The Zenbook's single gallery image means Carbon Black only.
	_, err := handler.Handle(ctx, AddItemCommand{
		SessionID: "sess-5", ProductID: "4", Quantity: 1, Color: "Robot White",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownColor)

	_, err = handler.Handle(ctx, AddItemCommand{
		SessionID: "sess-5", ProductID: "1", Quantity: 1, Color: "Neon Green",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownColor)

	cart, loadErr := carts.Load(ctx, "sess-5")
	require.NoError(t, loadErr)
	assert.True(t, cart.IsEmpty())
}

func TestRemoveItemDropsAllVariantsAndPersists(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	addHandler := NewAddItemHandler(carts, seededCatalog(t))
	removeHandler := NewRemoveItemHandler(carts)
	ctx := context.Background()

	for _, color := range []string{"Carbon Black", "Robot White"} {
		_, err := addHandler.Handle(ctx, AddItemCommand{
			SessionID: "sess-2", ProductID: "1", Quantity: 1, Color: color,
		})
		require.NoError(t, err)
	}
	_, err := addHandler.Handle(ctx, AddItemCommand{
		SessionID: "sess-2", ProductID: "4", Quantity: 1, Color: "Carbon Black",
	})
	require.NoError(t, err)

	cart, err := removeHandler.Handle(ctx, RemoveItemCommand{SessionID: "sess-2", ProductID: "1"})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "4", cart.Items[0].ID)

	persisted, err := carts.Load(ctx, "sess-2")
	require.NoError(t, err)
	require.Len(t, persisted.Items, 1)
}

func TestUpdateQuantityRejectsZeroDelta(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	handler := NewUpdateQuantityHandler(carts)

	_, err := handler.Handle(context.Background(), UpdateQuantityCommand{
		SessionID: "sess-3", ProductID: "1", Delta: 0,
	})
	assert.Error(t, err)
}

func TestUpdateQuantityClampsAndPersists(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	addHandler := NewAddItemHandler(carts, seededCatalog(t))
	updateHandler := NewUpdateQuantityHandler(carts)
	ctx := context.Background()

	_, err := addHandler.Handle(ctx, AddItemCommand{
		SessionID: "sess-4", ProductID: "4", Quantity: 2, Color: "Carbon Black",
	})
	require.NoError(t, err)

	cart, err := updateHandler.Handle(ctx, UpdateQuantityCommand{
		SessionID: "sess-4", ProductID: "4", Delta: -10,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, domain.MinQuantity, cart.Items[0].Quantity)
}
