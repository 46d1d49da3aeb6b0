package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartDomain "github.com/voltshop/storefront/internal/cart/domain"
	cartRepository "github.com/voltshop/storefront/internal/cart/repository"
	catalog "github.com/voltshop/storefront/internal/catalog/domain"
	"github.com/voltshop/storefront/internal/checkout/domain"
	"github.com/voltshop/storefront/internal/checkout/repository"
	"github.com/voltshop/storefront/kafka"
	"github.com/voltshop/storefront/pkg/logger"
)

func init() {
	logger.Init("checkout-command-test", false)
}

// fakeGateway approves or declines instantly.
type fakeGateway struct {
	declineWith error
	requests    []domain.PaymentRequest
}

func (g *fakeGateway) Authorize(ctx context.Context, req domain.PaymentRequest) (*domain.Receipt, error) {
	g.requests = append(g.requests, req)
	if g.declineWith != nil {
		return nil, g.declineWith
	}
	return &domain.Receipt{TransactionID: "TXN-test", AuthorizedAt: time.Now()}, nil
}

type capturedEvents struct {
	events []kafka.OrderPlacedEvent
}

func (c *capturedEvents) PublishOrderPlaced(_ context.Context, event kafka.OrderPlacedEvent) error {
	c.events = append(c.events, event)
	return nil
}

func cartWithPhone(t *testing.T, carts cartDomain.CartRepository, sessionID string) {
	t.Helper()
	var cart cartDomain.Cart
	require.NoError(t, cart.Add(catalog.Product{
		ID: "1", Name: "Iphone 15 ProMax", Price: 1_200_000,
	}, 3, "Carbon Black"))
	require.NoError(t, carts.Save(context.Background(), sessionID, cart))
}

func TestPlaceOrderHappyPath(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	orders := repository.NewMemoryOrderRepository()
	gw := &fakeGateway{}
	events := &capturedEvents{}
	handler := NewPlaceOrderHandler(carts, orders, gw, events)
	ctx := context.Background()

	cartWithPhone(t, carts, "sess-1")

	order, err := handler.Handle(ctx, PlaceOrderCommand{
		SessionID:     "sess-1",
		PaymentMethod: domain.MethodPayPal,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-[0-9a-f]{8}$`, order.ID)
	assert.Equal(t, domain.StatusCompleted, order.Status)
	assert.Equal(t, int64(3_600_000), order.Subtotal)
	assert.Equal(t, int64(3_613_000), order.Total)
	assert.Equal(t, "NGN", order.Currency)
	assert.Equal(t, "TXN-test", order.TransactionID)
	assert.Equal(t, 3, order.ItemsCount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Carbon Black", order.Items[0].SelectedColor)

	// Gateway was asked to charge the full total
	require.Len(t, gw.requests, 1)
	assert.Equal(t, order.Total, gw.requests[0].Amount)

	// The order is persisted and the cart is cleared
	persisted, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", persisted.SessionID)

	cart, err := carts.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// An event was published for the notifier
	require.Len(t, events.events, 1)
	assert.Equal(t, order.ID, events.events[0].OrderID)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	orders := repository.NewMemoryOrderRepository()
	handler := NewPlaceOrderHandler(carts, orders, &fakeGateway{}, nil)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{SessionID: "sess-empty"})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestPlaceOrderDeclinedPaymentLeavesCartIntact(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	orders := repository.NewMemoryOrderRepository()
	gw := &fakeGateway{declineWith: domain.ErrPaymentDeclined}
	handler := NewPlaceOrderHandler(carts, orders, gw, nil)
	ctx := context.Background()

	cartWithPhone(t, carts, "sess-2")

	_, err := handler.Handle(ctx, PlaceOrderCommand{SessionID: "sess-2"})
	require.ErrorIs(t, err, domain.ErrPaymentDeclined)

	// Nothing was ordered and the cart survives for a retry
	count, err := orders.CountBySession("sess-2", "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	cart, err := carts.Load(ctx, "sess-2")
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
}

func TestPlaceOrderCancelledContextLeavesCartIntact(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	orders := repository.NewMemoryOrderRepository()
	gw := &fakeGateway{declineWith: context.Canceled}
	handler := NewPlaceOrderHandler(carts, orders, gw, nil)
	ctx := context.Background()

	cartWithPhone(t, carts, "sess-3")

	_, err := handler.Handle(ctx, PlaceOrderCommand{SessionID: "sess-3"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	cart, err := carts.Load(ctx, "sess-3")
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
}

func TestPlaceOrderDefaultsPaymentMethod(t *testing.T) {
	carts := cartRepository.NewMemoryCartRepository()
	orders := repository.NewMemoryOrderRepository()
	handler := NewPlaceOrderHandler(carts, orders, &fakeGateway{}, nil)

	cartWithPhone(t, carts, "sess-4")

	order, err := handler.Handle(context.Background(), PlaceOrderCommand{SessionID: "sess-4"})
	require.NoError(t, err)
	assert.Equal(t, domain.MethodCreditCard, order.PaymentMethod)
}
