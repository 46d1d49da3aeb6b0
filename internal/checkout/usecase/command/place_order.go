package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	cartDomain "github.com/voltshop/storefront/internal/cart/domain"
	"github.com/voltshop/storefront/internal/checkout/domain"
	"github.com/voltshop/storefront/kafka"
	"github.com/voltshop/storefront/pkg/logger"
)

// EventPublisher publishes order lifecycle events. A nil publisher
// disables eventing without changing the checkout flow.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// PlaceOrderCommand represents the command to check out a session's cart
type PlaceOrderCommand struct {
	SessionID     string
	PaymentMethod string
}

// PlaceOrderHandler handles the place order command
type PlaceOrderHandler struct {
	carts   cartDomain.CartRepository
	orders  domain.OrderRepository
	gateway domain.PaymentGateway
	events  EventPublisher
}

// NewPlaceOrderHandler creates a new place order handler
func NewPlaceOrderHandler(
	carts cartDomain.CartRepository,
	orders domain.OrderRepository,
	gateway domain.PaymentGateway,
	events EventPublisher,
) *PlaceOrderHandler {
	return &PlaceOrderHandler{
		carts:   carts,
		orders:  orders,
		gateway: gateway,
		events:  events,
	}
}

// Handle executes the place order command. The cart is only cleared
// after the gateway confirms the charge and the order record is
// written; any failure leaves the cart exactly as it was.
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	if cmd.SessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	if cmd.PaymentMethod == "" {
		cmd.PaymentMethod = domain.MethodCreditCard
	}

	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	summary := cartDomain.Quote(cart)
	orderID := fmt.Sprintf("ORD-%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:8])

	receipt, err := h.gateway.Authorize(ctx, domain.PaymentRequest{
		OrderID:       orderID,
		Amount:        summary.Total,
		Currency:      "NGN",
		PaymentMethod: cmd.PaymentMethod,
	})
	if err != nil {
		return nil, fmt.Errorf("payment not authorized: %w", err)
	}

	order := &domain.Order{
		ID:            orderID,
		SessionID:     cmd.SessionID,
		Items:         snapshotItems(cart),
		ItemsCount:    cart.Count(),
		Subtotal:      summary.Subtotal,
		Shipping:      summary.Shipping,
		VAT:           summary.VAT,
		Total:         summary.Total,
		Currency:      "NGN",
		Status:        domain.StatusCompleted,
		PaymentMethod: cmd.PaymentMethod,
		TransactionID: receipt.TransactionID,
	}

	if err := h.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Payment is confirmed and the order exists; a failed clear must
	// not undo the checkout.
	if err := h.carts.Clear(ctx, cmd.SessionID); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("order_id", order.ID).
			Msg("Failed to clear cart after checkout")
	}

	if h.events != nil {
		event := kafka.OrderPlacedEvent{
			OrderID:       order.ID,
			SessionID:     order.SessionID,
			ItemsCount:    order.ItemsCount,
			Subtotal:      order.Subtotal,
			Shipping:      order.Shipping,
			VAT:           order.VAT,
			Total:         order.Total,
			Currency:      order.Currency,
			PaymentMethod: order.PaymentMethod,
			TransactionID: order.TransactionID,
		}
		if err := h.events.PublishOrderPlaced(ctx, event); err != nil {
			// Eventing is best-effort; the order already stands.
			logger.Error(ctx).
				Err(err).
				Str("order_id", order.ID).
				Msg("Failed to publish order placed event")
		}
	}

	return order, nil
}

func snapshotItems(cart cartDomain.Cart) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, domain.OrderItem{
			ProductID:     line.ID,
			Name:          line.Name,
			Brand:         line.Brand,
			Price:         line.Price,
			Image:         line.Image,
			Quantity:      line.Quantity,
			SelectedColor: line.SelectedColor,
		})
	}
	return items
}
