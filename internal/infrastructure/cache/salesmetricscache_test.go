package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/domain/ledger"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

// nopLogger is a no-op logger for testing.
type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func sampleMetrics() *ledger.SalesMetrics {
	return &ledger.SalesMetrics{
		GrossTotal:            decimal.RequireFromString("150.50"),
		PlatformFeePercentage: decimal.RequireFromString("0.05"),
		ExpertSplitPercentage: decimal.RequireFromString("0.60"),
		TeamSplitPercentage:   decimal.RequireFromString("0.40"),
		CustomTaxes:           []ledger.CustomTax{},
	}
}

func TestSalesMetricsCache_RoundTrip(t *testing.T) {
	client, _ := setupTestRedis(t)
	c := NewRedisSalesMetricsCache(client, 5*time.Minute, newNopLogger())
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 42, sampleMetrics()))

	got, err := c.Get(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.GrossTotal.Equal(decimal.RequireFromString("150.50")))
}

func TestSalesMetricsCache_MissReturnsNil(t *testing.T) {
	client, _ := setupTestRedis(t)
	c := NewRedisSalesMetricsCache(client, 5*time.Minute, newNopLogger())

	got, err := c.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSalesMetricsCache_CorruptEntryIsMiss(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedisSalesMetricsCache(client, 5*time.Minute, newNopLogger())

	require.NoError(t, mr.Set("tenant:metrics:42", "{not json"))

	got, err := c.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSalesMetricsCache_Invalidate(t *testing.T) {
	client, _ := setupTestRedis(t)
	c := NewRedisSalesMetricsCache(client, 5*time.Minute, newNopLogger())
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 42, sampleMetrics()))
	require.NoError(t, c.Invalidate(ctx, 42))

	got, err := c.Get(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSalesMetricsCache_TTLWithinJitterWindow(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedisSalesMetricsCache(client, 5*time.Minute, newNopLogger())

	require.NoError(t, c.Set(context.Background(), 42, sampleMetrics()))

	ttl := mr.TTL("tenant:metrics:42")
	assert.GreaterOrEqual(t, ttl, 5*time.Minute)
	assert.Less(t, ttl, 7*time.Minute)
}

func TestSalesMetricsCache_KeysAreTenantScoped(t *testing.T) {
	client, _ := setupTestRedis(t)
	c := NewRedisSalesMetricsCache(client, 5*time.Minute, newNopLogger())
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 1, sampleMetrics()))

	got, err := c.Get(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, got, "another tenant's entry must not be visible")
}
