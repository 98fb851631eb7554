package usecases

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/domain/ledger"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

// SalesMetricsCache caches derived metrics per tenant. Misses and cache
// failures both fall through to a fresh computation; invalidation is
// keyed by tenant ID.
type SalesMetricsCache interface {
	Get(ctx context.Context, tenantID uint) (*ledger.SalesMetrics, error)
	Set(ctx context.Context, tenantID uint, metrics *ledger.SalesMetrics) error
	Invalidate(ctx context.Context, tenantID uint) error
}

type GetSalesMetricsUseCase struct {
	transactionRepo ledger.TransactionRepository
	salesConfigRepo ledger.SalesConfigRepository
	cache           SalesMetricsCache // Optional
	logger          logger.Interface
}

func NewGetSalesMetricsUseCase(
	transactionRepo ledger.TransactionRepository,
	salesConfigRepo ledger.SalesConfigRepository,
	logger logger.Interface,
) *GetSalesMetricsUseCase {
	return &GetSalesMetricsUseCase{
		transactionRepo: transactionRepo,
		salesConfigRepo: salesConfigRepo,
		logger:          logger,
	}
}

// SetCache sets the metrics cache (optional dependency injection)
func (uc *GetSalesMetricsUseCase) SetCache(cache SalesMetricsCache) {
	uc.cache = cache
}

// Execute derives the tenant's sales metrics. A failed sales-config read
// degrades to defaults instead of aborting; only a failed ledger read is
// fatal to the request.
func (uc *GetSalesMetricsUseCase) Execute(ctx context.Context, tenantID uint) (*ledger.SalesMetrics, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, tenantID)
		if err != nil {
			uc.logger.Warnw("metrics cache read failed, recomputing", "tenant_id", tenantID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	transactions, err := uc.transactionRepo.ListByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction ledger: %w", err)
	}

	cfg := uc.loadConfig(ctx, tenantID)
	metrics := ledger.ComputeSalesMetrics(transactions, cfg)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, tenantID, &metrics); err != nil {
			uc.logger.Warnw("metrics cache write failed", "tenant_id", tenantID, "error", err)
		}
	}

	return &metrics, nil
}

// loadConfig reads the tenant's sales configuration, degrading to nil
// (pure defaults) on read failure.
func (uc *GetSalesMetricsUseCase) loadConfig(ctx context.Context, tenantID uint) *ledger.SalesConfig {
	cfg, err := uc.salesConfigRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		uc.logger.Warnw("sales config read failed, using defaults", "tenant_id", tenantID, "error", err)
		return nil
	}
	return cfg
}
