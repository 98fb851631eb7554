// Package tenant resolves customer emails to tenant identifiers.
package tenant

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/domain/tenant"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

// Resolver maps an email address to a tenant ID via the two-hop
// directory lookup. Read-only; never mutates directory state.
type Resolver struct {
	directory tenant.DirectoryRepository
	logger    logger.Interface
}

func NewResolver(directory tenant.DirectoryRepository, logger logger.Interface) *Resolver {
	return &Resolver{
		directory: directory,
		logger:    logger,
	}
}

// Resolve returns the tenant ID owning the email. The two failure modes
// return tenant.ErrProfileNotFound and tenant.ErrMembershipNotFound so
// callers and logs can tell a dangling email apart from a profile that
// was never attached to a tenant.
func (r *Resolver) Resolve(ctx context.Context, email string) (uint, error) {
	profile, err := r.directory.GetProfileByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("failed to look up account profile: %w", err)
	}
	if profile == nil {
		r.logger.Warnw("no account profile for webhook email", "email", email)
		return 0, tenant.ErrProfileNotFound
	}

	membership, err := r.directory.GetMembershipByAccountID(ctx, profile.AccountID)
	if err != nil {
		return 0, fmt.Errorf("failed to look up tenant membership: %w", err)
	}
	if membership == nil {
		r.logger.Warnw("account profile has no tenant membership",
			"email", email,
			"account_id", profile.AccountID)
		return 0, tenant.ErrMembershipNotFound
	}

	return membership.TenantID, nil
}
