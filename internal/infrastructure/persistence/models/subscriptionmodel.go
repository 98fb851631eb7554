package models

import "time"

// SubscriptionModel is the database persistence model for tenant
// subscriptions. This is the anti-corruption layer between domain and
// database; the unique index on tenant_id enforces the one-row-per-tenant
// invariant at the schema level.
type SubscriptionModel struct {
	ID                    uint   `gorm:"primarykey"`
	TenantID              uint   `gorm:"uniqueIndex;not null"`
	PlanID                string `gorm:"not null;size:100"`
	Status                string `gorm:"not null;size:20;index:idx_subscription_status"`
	CancelAtPeriodEnd     bool   `gorm:"not null;default:false"`
	CurrentPeriodEnd      *time.Time
	ExternalOrderID       string `gorm:"size:100"`
	ExternalCustomerEmail string `gorm:"size:255"`
	LastEventAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
