package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomTax is an operator-defined tax line. Order matters and is
// preserved through persistence and aggregation.
type CustomTax struct {
	Label      string          `json:"label"`
	Percentage decimal.Decimal `json:"percentage"`
}

// SalesConfig is the per-tenant operator configuration. At most one row
// exists per tenant; every field is optional.
//
// A nil manual figure means "not set". A non-nil zero is an explicit
// operator override and takes precedence over ledger-derived totals.
// The three split percentages are stored as the operator entered them;
// coercion to numbers happens at aggregation time so one bad field never
// poisons the whole computation.
type SalesConfig struct {
	TenantID               uint
	ManualGrossRevenue     *decimal.Decimal
	ManualDailyAverage     *decimal.Decimal
	ManualProjectionDays   *int
	PlatformFeePercentage  string
	ExpertSplitPercentage  string
	TeamSplitPercentage    string
	CustomTaxes            []CustomTax
	FinancialGoalTarget    *decimal.Decimal
	FinancialGoalStartDate *time.Time
}
