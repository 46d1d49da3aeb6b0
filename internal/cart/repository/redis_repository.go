package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voltshop/storefront/internal/cart/domain"
)

const cartKeyPrefix = "cart:"

// DefaultCartTTL bounds how long an abandoned cart survives in Redis.
const DefaultCartTTL = 30 * 24 * time.Hour

// RedisCartRepository persists each session's cart as a JSON array under
// a single key. Writes go through on every mutation; concurrent tabs on
// one session are last-writer-wins, which matches the storefront's
// localStorage behavior.
type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &RedisCartRepository{client: client, ttl: ttl}
}

func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}
	return decodeItems(data, sessionID), nil
}

func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	data, err := encodeItems(cart)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, cartKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *RedisCartRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}
