package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ledgerline/ledgerline/internal/domain/ledger"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

const (
	metricsKeyPrefix = "tenant:metrics:"
	metricsTTLJitter = 2 * time.Minute // anti-stampede
)

// RedisSalesMetricsCache caches derived sales metrics per tenant. Cache
// misses return nil without error; callers recompute and Set. Writes to
// the subscription or ledger invalidate the tenant's key.
type RedisSalesMetricsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisSalesMetricsCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisSalesMetricsCache {
	return &RedisSalesMetricsCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisSalesMetricsCache) key(tenantID uint) string {
	return fmt.Sprintf("%s%d", metricsKeyPrefix, tenantID)
}

func (c *RedisSalesMetricsCache) Get(ctx context.Context, tenantID uint) (*ledger.SalesMetrics, error) {
	payload, err := c.client.Get(ctx, c.key(tenantID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics cache: %w", err)
	}

	var metrics ledger.SalesMetrics
	if err := json.Unmarshal(payload, &metrics); err != nil {
		// A corrupt entry behaves like a miss; the next Set repairs it.
		c.logger.Warnw("corrupt metrics cache entry, treating as miss", "tenant_id", tenantID, "error", err)
		return nil, nil
	}

	return &metrics, nil
}

func (c *RedisSalesMetricsCache) Set(ctx context.Context, tenantID uint, metrics *ledger.SalesMetrics) error {
	payload, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	ttl := c.ttl + time.Duration(rand.Int63n(int64(metricsTTLJitter)))
	if err := c.client.Set(ctx, c.key(tenantID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write metrics cache: %w", err)
	}
	return nil
}

func (c *RedisSalesMetricsCache) Invalidate(ctx context.Context, tenantID uint) error {
	if err := c.client.Del(ctx, c.key(tenantID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate metrics cache: %w", err)
	}
	return nil
}
