package subscription

import "context"

// Repository persists the one-row-per-tenant subscription state.
type Repository interface {
	// Upsert writes the full subscription state keyed by tenant ID.
	// Applying the same state twice yields the same end state.
	Upsert(ctx context.Context, sub *Subscription) error

	// GetByTenantID returns the tenant's subscription, or nil when no
	// row exists.
	GetByTenantID(ctx context.Context, tenantID uint) (*Subscription, error)
}
