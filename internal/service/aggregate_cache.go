package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	dashboardCacheKey    = "aggregate:dashboard"
	analyticsCachePrefix = "aggregate:analytics:"
)

type cacheAPI interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// AggregateCache holds cached dashboard and analytics bodies in Redis.
// Aggregates are not per-admin, so entries are shared across sessions.
// It also implements CacheInvalidator for the mutation services.
type AggregateCache struct {
	rdb          cacheAPI
	dashboardTTL time.Duration
	analyticsTTL time.Duration
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewAggregateCache constructs the cache. A nil redis client disables
// caching entirely: every lookup misses and writes are dropped.
func NewAggregateCache(rdb cacheAPI, dashboardTTL, analyticsTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *AggregateCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AggregateCache{
		rdb:          rdb,
		dashboardTTL: dashboardTTL,
		analyticsTTL: analyticsTTL,
		metrics:      metrics,
		logger:       logger,
	}
}

func (c *AggregateCache) get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("aggregate_cache_read_failed", zap.String("key", key), zap.Error(err))
		}
		c.metrics.RecordCacheOperation(false)
		return nil, false
	}
	c.metrics.RecordCacheOperation(true)
	return raw, true
}

func (c *AggregateCache) set(ctx context.Context, key string, body []byte, ttl time.Duration) {
	if c == nil || c.rdb == nil || len(body) == 0 {
		return
	}
	if err := c.rdb.Set(ctx, key, body, ttl).Err(); err != nil {
		c.logger.Warn("aggregate_cache_write_failed", zap.String("key", key), zap.Error(err))
	}
}

// GetDashboard returns the cached dashboard body, if present.
func (c *AggregateCache) GetDashboard(ctx context.Context) ([]byte, bool) {
	return c.get(ctx, dashboardCacheKey)
}

// SetDashboard stores the dashboard body.
func (c *AggregateCache) SetDashboard(ctx context.Context, body []byte) {
	c.set(ctx, dashboardCacheKey, body, c.dashboardTTL)
}

// GetAnalytics returns the cached analytics body for a resource.
func (c *AggregateCache) GetAnalytics(ctx context.Context, resource string) ([]byte, bool) {
	return c.get(ctx, analyticsCachePrefix+resource)
}

// SetAnalytics stores the analytics body for a resource.
func (c *AggregateCache) SetAnalytics(ctx context.Context, resource string, body []byte) {
	c.set(ctx, analyticsCachePrefix+resource, body, c.analyticsTTL)
}

// InvalidateDashboard drops the dashboard entry.
func (c *AggregateCache) InvalidateDashboard(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, dashboardCacheKey).Err(); err != nil {
		c.logger.Warn("aggregate_cache_invalidate_failed", zap.String("key", dashboardCacheKey), zap.Error(err))
	}
}

// InvalidateAnalytics drops the analytics entry for a resource.
func (c *AggregateCache) InvalidateAnalytics(ctx context.Context, resource string) {
	if c == nil || c.rdb == nil {
		return
	}
	key := analyticsCachePrefix + resource
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("aggregate_cache_invalidate_failed", zap.String("key", key), zap.Error(err))
	}
}
