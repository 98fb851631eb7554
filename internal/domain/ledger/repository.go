package ledger

import "context"

// TransactionRepository reads the tenant transaction ledger.
type TransactionRepository interface {
	ListByTenantID(ctx context.Context, tenantID uint) ([]Transaction, error)
}

// SalesConfigRepository reads the per-tenant sales configuration.
type SalesConfigRepository interface {
	// GetByTenantID returns the tenant's config, or nil when none exists.
	// Absence is not an error; the aggregator runs on defaults.
	GetByTenantID(ctx context.Context, tenantID uint) (*SalesConfig, error)
}
