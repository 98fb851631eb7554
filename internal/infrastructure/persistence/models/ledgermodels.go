package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TransactionModel is one immutable ledger entry. Owned by the ledger
// subsystem; this engine only reads it.
type TransactionModel struct {
	ID        uint            `gorm:"primarykey"`
	TenantID  uint            `gorm:"not null;index:idx_transaction_tenant"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status    string          `gorm:"not null;size:20"`
	Date      time.Time       `gorm:"not null;index:idx_transaction_date"`
	CreatedAt time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// SalesConfigModel is the operator-managed sales configuration, at most
// one row per tenant. Percentage columns are stored as entered; numeric
// coercion happens in the aggregator. CustomTaxes holds the ordered tax
// list as JSON.
type SalesConfigModel struct {
	ID                     uint             `gorm:"primarykey"`
	TenantID               uint             `gorm:"uniqueIndex;not null"`
	ManualGrossRevenue     *decimal.Decimal `gorm:"type:decimal(18,2)"`
	ManualDailyAverage     *decimal.Decimal `gorm:"type:decimal(18,2)"`
	ManualProjectionDays   *int
	PlatformFeePercentage  string `gorm:"size:32"`
	ExpertSplitPercentage  string `gorm:"size:32"`
	TeamSplitPercentage    string `gorm:"size:32"`
	CustomTaxes            datatypes.JSON
	FinancialGoalTarget    *decimal.Decimal `gorm:"type:decimal(18,2)"`
	FinancialGoalStartDate *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (SalesConfigModel) TableName() string {
	return "sales_configs"
}
