// Package cache is the read-through cache in front of order lookups.
// The order engine's behaviour must be identical with or without it; it is
// only consulted by the HTTP boundary and invalidated on every write.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get returns "" on a miss.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
