package query

import (
	"fmt"

	"github.com/voltshop/storefront/internal/checkout/domain"
)

// ListOrdersQuery lists a session's order history, newest first, with an
// optional status filter matching the history tabs.
type ListOrdersQuery struct {
	SessionID string
	Status    string
	Limit     int
	Offset    int
}

// OrderList is a page of order history.
type OrderList struct {
	Orders []domain.Order `json:"orders"`
	Total  int64          `json:"total"`
}

// ListOrdersHandler handles the list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) (*OrderList, error) {
	if q.SessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	if q.Status != "" && !domain.ValidStatus(q.Status) {
		return nil, fmt.Errorf("unknown order status %q", q.Status)
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	orders, err := h.repo.FindBySession(q.SessionID, q.Status, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	total, err := h.repo.CountBySession(q.SessionID, q.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	return &OrderList{Orders: orders, Total: total}, nil
}
