package memory

import (
	"context"
	"sync"
	"time"
)

type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimitStore contadores de ventana fija en memoria (un solo proceso).
type RateLimitStore struct {
	mu    sync.Mutex
	store map[string]*rateLimitEntry
	now   func() time.Time
}

// NewRateLimitStore crea el almacén.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{store: make(map[string]*rateLimitEntry), now: time.Now}
}

// Increment suma uno; la ventana arranca con el primer incremento.
func (s *RateLimitStore) Increment(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.store {
		if now.After(e.expiresAt) {
			delete(s.store, k)
		}
	}

	e, ok := s.store[key]
	if !ok {
		e = &rateLimitEntry{expiresAt: now.Add(window)}
		s.store[key] = e
	}
	e.count++
	return e.count, nil
}

func (s *RateLimitStore) GetCount(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.store[key]
	if !ok || s.now().After(e.expiresAt) {
		return 0, nil
	}
	return e.count, nil
}
