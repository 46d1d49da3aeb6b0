package query

import (
	"fmt"

	"github.com/voltshop/storefront/internal/checkout/domain"
)

// GetOrderQuery fetches one order, scoped to its owning session.
type GetOrderQuery struct {
	ID        string
	SessionID string
}

// GetOrderHandler handles the get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query. Another session's order reads as
// not found rather than leaking its existence.
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	if q.ID == "" {
		return nil, fmt.Errorf("order id is required")
	}

	order, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, err
	}
	if q.SessionID != "" && order.SessionID != q.SessionID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
