package repository

import (
	"sort"
	"sync"

	"github.com/voltshop/storefront/internal/checkout/domain"
)

// MemoryOrderRepository keeps orders in memory for tests.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Create(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, *order)
	return nil
}

func (r *MemoryOrderRepository) FindByID(id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *MemoryOrderRepository) FindBySession(sessionID, status string, limit, offset int) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.matching(sessionID, status)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []domain.Order{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *MemoryOrderRepository) CountBySession(sessionID, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.matching(sessionID, status))), nil
}

func (r *MemoryOrderRepository) matching(sessionID, status string) []domain.Order {
	matched := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if o.SessionID != sessionID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		matched = append(matched, o)
	}
	return matched
}
