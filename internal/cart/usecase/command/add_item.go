package command

import (
	"context"
	"fmt"

	"github.com/voltshop/storefront/internal/cart/domain"
	catalog "github.com/voltshop/storefront/internal/catalog/domain"
)

// AddItemCommand represents the command to put a product into the cart
type AddItemCommand struct {
	SessionID string
	ProductID string
	Quantity  int
	Color     string
}

// AddItemHandler handles the add item command
type AddItemHandler struct {
	carts    domain.CartRepository
	products catalog.ProductRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(carts domain.CartRepository, products catalog.ProductRepository) *AddItemHandler {
	return &AddItemHandler{carts: carts, products: products}
}

// Handle executes the add item command. The catalog record is snapshot
// into the line item so the cart stays renderable on its own.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (domain.Cart, error) {
	if cmd.SessionID == "" {
		return domain.Cart{}, fmt.Errorf("session id is required")
	}
	if cmd.Quantity < domain.MinQuantity {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}
	if cmd.Color == "" {
		return domain.Cart{}, domain.ErrColorRequired
	}

	product, err := h.products.FindByID(cmd.ProductID)
	if err != nil {
		return domain.Cart{}, err
	}
	if !product.HasColor(cmd.Color) {
		return domain.Cart{}, domain.ErrUnknownColor
	}

	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	if err := cart.Add(*product, cmd.Quantity, cmd.Color); err != nil {
		return domain.Cart{}, err
	}

	if err := h.carts.Save(ctx, cmd.SessionID, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}
