package controller

import (
	"context"
	"encoding/json"
	"time"

	"newsroom-be/internal/pkg/logger"
	"newsroom-be/pkg/cache"
)

// responseCache wraps the key-value store with the advisory semantics the
// controllers need: every cache failure is logged and swallowed so a broken
// cache never fails a request.
type responseCache struct {
	store cache.Store
	log   logger.ILogger
	ttl   time.Duration
}

func newResponseCache(store cache.Store, log logger.ILogger, ttl time.Duration) *responseCache {
	return &responseCache{store: store, log: log, ttl: ttl}
}

// get unmarshals the cached value for key into out and reports a hit.
func (c *responseCache) get(ctx context.Context, key string, out interface{}) bool {
	data, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache", "get failed", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn("cache", "corrupt entry dropped", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	return true
}

func (c *responseCache) set(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("cache", "marshal failed", map[string]interface{}{"key": key, "error": err.Error()})
		return
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.log.Warn("cache", "set failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

// invalidate deletes the given keys synchronously before the caller responds.
func (c *responseCache) invalidate(ctx context.Context, keys ...string) {
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.log.Warn("cache", "invalidate failed", map[string]interface{}{"keys": keys, "error": err.Error()})
	}
}
