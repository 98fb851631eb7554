// Package tenant models the account directory used to attribute webhook
// deliveries to tenants. Resolution is a two-hop lookup: customer email
// to account profile, account to tenant membership.
package tenant

// AccountProfile links a login email to an account.
type AccountProfile struct {
	ID        uint
	AccountID uint
	Email     string
}

// TenantMembership links an account to the tenant it belongs to.
type TenantMembership struct {
	ID        uint
	AccountID uint
	TenantID  uint
}
