package tenant

import "context"

// DirectoryRepository reads the account directory. The directory is owned
// by an external subsystem; this engine never writes to it.
type DirectoryRepository interface {
	// GetProfileByEmail returns the profile with an exact email match,
	// or nil when none exists.
	GetProfileByEmail(ctx context.Context, email string) (*AccountProfile, error)

	// GetMembershipByAccountID returns the tenant membership for the
	// account, or nil when none exists.
	GetMembershipByAccountID(ctx context.Context, accountID uint) (*TenantMembership, error)
}
