package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltshop/storefront/internal/cart/domain"
	"github.com/voltshop/storefront/internal/cart/repository"
	catalog "github.com/voltshop/storefront/internal/catalog/domain"
	"github.com/voltshop/storefront/pkg/logger"
)

func init() {
	logger.Init("cart-query-test", false)
}

func TestGetCartComputesCountAndSummary(t *testing.T) {
	carts := repository.NewMemoryCartRepository()
	handler := NewGetCartHandler(carts)
	ctx := context.Background()

	var cart domain.Cart
	require.NoError(t, cart.Add(catalog.Product{ID: "1", Price: 1_200_000}, 3, "Carbon Black"))
	require.NoError(t, carts.Save(ctx, "sess-1", cart))

	view, err := handler.Handle(ctx, GetCartQuery{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.Equal(t, 3, view.Count)
	assert.Equal(t, int64(3_600_000), view.Summary.Subtotal)
	assert.Equal(t, int64(3_613_000), view.Summary.Total)
}

func TestGetCartUnknownSessionIsEmptyNotNil(t *testing.T) {
	handler := NewGetCartHandler(repository.NewMemoryCartRepository())

	view, err := handler.Handle(context.Background(), GetCartQuery{SessionID: "fresh"})
	require.NoError(t, err)

	require.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.Count)
	assert.Equal(t, domain.Summary{}, view.Summary)
}
