package cache

import (
	"fmt"

	"github.com/stylebot-ai/support-engine/internal/config"
)

// New creates a cache client from configuration.
func New(cfg config.CacheConfig) (Client, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemoryClient(cfg.MaxEntries), nil
	case "redis":
		return NewRedisClient(cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown cache driver: %s", cfg.Driver)
	}
}
