package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics is the derived financial snapshot for a tenant. It is
// recomputed on read and never persisted.
type SalesMetrics struct {
	GrossTotal            decimal.Decimal  `json:"gross_total"`
	PlatformFeePercentage decimal.Decimal  `json:"platform_fee_percentage"`
	ExpertSplitPercentage decimal.Decimal  `json:"expert_split_percentage"`
	TeamSplitPercentage   decimal.Decimal  `json:"team_split_percentage"`
	ManualGrossRevenue    *decimal.Decimal `json:"manual_gross_revenue,omitempty"`
	ManualDailyAverage    *decimal.Decimal `json:"manual_daily_average,omitempty"`
	ManualProjectionDays  *int             `json:"manual_projection_days,omitempty"`
	CustomTaxes           []CustomTax      `json:"custom_taxes"`
}

// FinancialGoal is the derived goal progress for a tenant.
type FinancialGoal struct {
	Current   decimal.Decimal `json:"current"`
	Target    decimal.Decimal `json:"target"`
	StartDate time.Time       `json:"start_date"`
}
