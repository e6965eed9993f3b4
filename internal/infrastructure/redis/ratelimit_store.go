package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore contadores de ventana fija en Redis.
type RateLimitStore struct {
	client *Client
}

// NewRateLimitStore crea el almacén.
func NewRateLimitStore(client *Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

// Increment suma uno al contador; el TTL se fija solo en el primer incremento.
func (s *RateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	if s.client == nil || s.client.store == nil {
		return 0, errNotInitialized
	}
	k := s.client.RateLimitKey(key)
	count, err := s.client.store.Incr(ctx, k).Result()
	if err != nil {
		return 0, err
	}
	if window > 0 && count == 1 {
		if err := s.client.store.Expire(ctx, k, window).Err(); err != nil {
			return int(count), err
		}
	}
	return int(count), nil
}

// GetCount valor actual; 0 si la ventana expiró.
func (s *RateLimitStore) GetCount(ctx context.Context, key string) (int, error) {
	if s.client == nil || s.client.store == nil {
		return 0, errNotInitialized
	}
	count, err := s.client.store.Get(ctx, s.client.RateLimitKey(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return count, err
}
