package schedule

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	activeAdKey  = "portal:active-ad"
	activeAdsKey = "portal:active-ads"
	// The login page polls this on every render; a short TTL keeps the
	// database out of the hot path without delaying schedule changes much.
	activeAdTTL = 30 * time.Second
)

// ActiveAdCache caches the public active-ad payloads in Redis. All methods
// degrade to cache-miss behavior on Redis errors; the caller always has
// the database as the source of truth.
type ActiveAdCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewActiveAdCache creates the cache. A nil client disables caching.
func NewActiveAdCache(client *redis.Client, logger *zap.Logger) *ActiveAdCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActiveAdCache{client: client, logger: logger}
}

// Get returns the cached payload for key, or nil on miss.
func (c *ActiveAdCache) Get(ctx context.Context, key string) []byte {
	if c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("active-ad cache read failed", zap.Error(err))
		}
		return nil
	}
	return raw
}

// Set stores payload under key with the standard TTL.
func (c *ActiveAdCache) Set(ctx context.Context, key string, payload []byte) {
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, activeAdTTL).Err(); err != nil {
		c.logger.Warn("active-ad cache write failed", zap.Error(err))
	}
}

// Invalidate drops both cached payloads after a schedule mutation.
func (c *ActiveAdCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, activeAdKey, activeAdsKey).Err(); err != nil {
		c.logger.Warn("active-ad cache invalidation failed", zap.Error(err))
	}
}
