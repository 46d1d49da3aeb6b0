package repository

import (
	"context"
	"sync"

	"github.com/voltshop/storefront/internal/cart/domain"
)

// MemoryCartRepository stores carts in process memory. It runs the same
// codec as the Redis repository, so tests exercise the real persistence
// round-trip.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string][]byte)}
}

func (r *MemoryCartRepository) Load(_ context.Context, sessionID string) (domain.Cart, error) {
	r.mu.RLock()
	data, ok := r.carts[sessionID]
	r.mu.RUnlock()

	if !ok {
		return domain.Cart{}, nil
	}
	return decodeItems(data, sessionID), nil
}

func (r *MemoryCartRepository) Save(_ context.Context, sessionID string, cart domain.Cart) error {
	data, err := encodeItems(cart)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.carts[sessionID] = data
	r.mu.Unlock()
	return nil
}

func (r *MemoryCartRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.carts, sessionID)
	r.mu.Unlock()
	return nil
}

// Put stores a raw payload for a session, bypassing the codec. Tests use
// it to seed malformed data.
func (r *MemoryCartRepository) Put(sessionID string, data []byte) {
	r.mu.Lock()
	r.carts[sessionID] = data
	r.mu.Unlock()
}
