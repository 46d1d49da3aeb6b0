package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltshop/storefront/internal/checkout/domain"
	"github.com/voltshop/storefront/internal/checkout/repository"
)

func seededOrders(t *testing.T) *repository.MemoryOrderRepository {
	t.Helper()
	repo := repository.NewMemoryOrderRepository()
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i, o := range []domain.Order{
		{ID: "ORD-aaaa0001", SessionID: "sess-1", Status: domain.StatusCompleted, Total: 100},
		{ID: "ORD-aaaa0002", SessionID: "sess-1", Status: domain.StatusCancelled, Total: 200},
		{ID: "ORD-aaaa0003", SessionID: "sess-1", Status: domain.StatusCompleted, Total: 300},
		{ID: "ORD-bbbb0001", SessionID: "sess-2", Status: domain.StatusCompleted, Total: 400},
	} {
		o.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(&o))
	}
	return repo
}

func TestGetOrderScopedToSession(t *testing.T) {
	handler := NewGetOrderHandler(seededOrders(t))

	order, err := handler.Handle(GetOrderQuery{ID: "ORD-aaaa0001", SessionID: "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), order.Total)

	// Another session's order reads as not found
	_, err = handler.Handle(GetOrderQuery{ID: "ORD-bbbb0001", SessionID: "sess-1"})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = handler.Handle(GetOrderQuery{ID: "ORD-missing", SessionID: "sess-1"})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListOrdersNewestFirst(t *testing.T) {
	handler := NewListOrdersHandler(seededOrders(t))

	list, err := handler.Handle(ListOrdersQuery{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.Equal(t, int64(3), list.Total)
	require.Len(t, list.Orders, 3)
	assert.Equal(t, "ORD-aaaa0003", list.Orders[0].ID)
}

func TestListOrdersStatusFilter(t *testing.T) {
	handler := NewListOrdersHandler(seededOrders(t))

	list, err := handler.Handle(ListOrdersQuery{SessionID: "sess-1", Status: domain.StatusCancelled})
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "ORD-aaaa0002", list.Orders[0].ID)

	_, err = handler.Handle(ListOrdersQuery{SessionID: "sess-1", Status: "refunded"})
	assert.Error(t, err)
}

func TestListOrdersNegativeOffsetClamped(t *testing.T) {
	handler := NewListOrdersHandler(seededOrders(t))

	// A malformed ?offset= reaches the handler as a negative number and
	// must read as the first page rather than panicking the repository.
	list, err := handler.Handle(ListOrdersQuery{SessionID: "sess-1", Offset: -1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Total)
	require.Len(t, list.Orders, 3)
	assert.Equal(t, "ORD-aaaa0003", list.Orders[0].ID)
}

func TestListOrdersOffsetPastEnd(t *testing.T) {
	handler := NewListOrdersHandler(seededOrders(t))

	list, err := handler.Handle(ListOrdersQuery{SessionID: "sess-1", Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Total)
	assert.Empty(t, list.Orders)
}

func TestListOrdersEmptySession(t *testing.T) {
	handler := NewListOrdersHandler(seededOrders(t))

	list, err := handler.Handle(ListOrdersQuery{SessionID: "sess-without-orders"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.Total)
	assert.Empty(t, list.Orders)
}
