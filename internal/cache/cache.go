// Package cache provides session storage with Redis and in-memory backends.
package cache

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrCacheMiss is returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache miss")

// Client is the interface for cache backends.
type Client interface {
	// Get retrieves a value by key. Returns ErrCacheMiss if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Ping checks connectivity to the backend.
	Ping(ctx context.Context) error

	// Close releases resources held by the client.
	Close() error
}

// Key builds a namespaced cache key from parts.
func Key(parts ...string) string {
	return "support:" + strings.Join(parts, ":")
}
