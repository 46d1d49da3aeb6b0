package query

import (
	"context"
	"fmt"

	"github.com/voltshop/storefront/internal/cart/domain"
)

// GetCartQuery represents the query to read a session's cart
type GetCartQuery struct {
	SessionID string
}

// CartView is the cart plus everything the header badge, cart page, and
// checkout summary derive from it, computed in one place so all three
// stay consistent.
type CartView struct {
	Items   []domain.LineItem `json:"items"`
	Count   int               `json:"count"`
	Summary domain.Summary    `json:"summary"`
}

// GetCartHandler handles the get cart query
type GetCartHandler struct {
	carts domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{carts: carts}
}

// Handle executes the get cart query
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (*CartView, error) {
	if q.SessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	cart, err := h.carts.Load(ctx, q.SessionID)
	if err != nil {
		return nil, err
	}

	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}

	return &CartView{
		Items:   items,
		Count:   cart.Count(),
		Summary: domain.Quote(cart),
	}, nil
}
