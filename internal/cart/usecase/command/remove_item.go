package command

import (
	"context"
	"fmt"

	"github.com/voltshop/storefront/internal/cart/domain"
)

// RemoveItemCommand removes every line of a product, all color variants.
type RemoveItemCommand struct {
	SessionID string
	ProductID string
}

// RemoveItemHandler handles the remove item command
type RemoveItemHandler struct {
	carts domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(carts domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts}
}

// Handle executes the remove item command. Removing an id that is not in
// the cart succeeds and changes nothing.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (domain.Cart, error) {
	if cmd.SessionID == "" {
		return domain.Cart{}, fmt.Errorf("session id is required")
	}
	if cmd.ProductID == "" {
		return domain.Cart{}, fmt.Errorf("product id is required")
	}

	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	cart.Remove(cmd.ProductID)

	if err := h.carts.Save(ctx, cmd.SessionID, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}
