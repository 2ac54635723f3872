// Package memstore is the in-process stand-in for redis: a fixed-window
// rate limiter and a revoked-token set, both on go-cache. State is lost on
// restart and not shared between instances.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	revokedPrefix   = "revoked:"
	rateLimitPrefix = "ratelimit:"
)

// Store implements the same methods as the redis client.
type Store struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// New creates a Store whose expired entries are purged every cleanup.
func New(cleanup time.Duration) *Store {
	return &Store{cache: cache.New(cache.NoExpiration, cleanup)}
}

// Allow counts one hit for key in the current window. The window starts at
// the first hit and lasts window.
func (s *Store) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := rateLimitPrefix + key
	if err := s.cache.Add(k, 1, window); err == nil {
		return 1 <= limit, nil
	}
	n, err := s.cache.IncrementInt(k, 1)
	if err != nil {
		// expired between Add and IncrementInt
		s.cache.Set(k, 1, window)
		return 1 <= limit, nil
	}
	return n <= limit, nil
}

// RevokeToken marks a token id revoked until ttl passes.
func (s *Store) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.cache.Set(revokedPrefix+jti, struct{}{}, ttl)
	return nil
}

// IsRevoked reports whether a token id was revoked.
func (s *Store) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := s.cache.Get(revokedPrefix + jti)
	return ok, nil
}
