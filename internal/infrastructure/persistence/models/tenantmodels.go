package models

import "time"

// AccountProfileModel is the read-only directory row linking a login
// email to an account. Owned by the account subsystem.
type AccountProfileModel struct {
	ID        uint   `gorm:"primarykey"`
	AccountID uint   `gorm:"not null;index:idx_profile_account"`
	Email     string `gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AccountProfileModel) TableName() string {
	return "account_profiles"
}

// TenantMembershipModel links an account to its tenant. Owned by the
// account subsystem.
type TenantMembershipModel struct {
	ID        uint `gorm:"primarykey"`
	AccountID uint `gorm:"not null;index:idx_membership_account"`
	TenantID  uint `gorm:"not null;index:idx_membership_tenant"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TenantMembershipModel) TableName() string {
	return "tenant_memberships"
}
