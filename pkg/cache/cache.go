// Package cache provides the key-value store used for response caching.
// The cache is advisory: callers are expected to log and continue when any
// of these operations fail.
package cache

import (
	"context"
	"time"
)

// Store is a minimal get/set/delete key-value cache with per-entry TTL.
type Store interface {
	// Get returns the raw value for key. The bool reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
