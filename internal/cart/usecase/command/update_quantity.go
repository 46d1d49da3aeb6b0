package command

import (
	"context"
	"fmt"

	"github.com/voltshop/storefront/internal/cart/domain"
)

// UpdateQuantityCommand adjusts the quantity of every line of a product
// by a signed delta. Quantities clamp at 1; the line is never removed by
// decrementing.
type UpdateQuantityCommand struct {
	SessionID string
	ProductID string
	Delta     int
}

// UpdateQuantityHandler handles the update quantity command
type UpdateQuantityHandler struct {
	carts domain.CartRepository
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(carts domain.CartRepository) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{carts: carts}
}

// Handle executes the update quantity command
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (domain.Cart, error) {
	if cmd.SessionID == "" {
		return domain.Cart{}, fmt.Errorf("session id is required")
	}
	if cmd.ProductID == "" {
		return domain.Cart{}, fmt.Errorf("product id is required")
	}
	if cmd.Delta == 0 {
		return domain.Cart{}, fmt.Errorf("delta must be non-zero")
	}

	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	cart.UpdateQuantity(cmd.ProductID, cmd.Delta)

	if err := h.carts.Save(ctx, cmd.SessionID, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}
