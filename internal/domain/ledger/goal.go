package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultGoalTarget applies when the tenant never configured a target.
var DefaultGoalTarget = decimal.NewFromInt(100000)

// DefaultGoalStartDate applies when the tenant never configured a start
// date for goal tracking.
var DefaultGoalStartDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ComputeFinancialGoal derives goal progress from the gross total and the
// optional sales configuration. Pure, recomputed on every read.
func ComputeFinancialGoal(grossTotal decimal.Decimal, cfg *SalesConfig) FinancialGoal {
	goal := FinancialGoal{
		Current:   grossTotal,
		Target:    DefaultGoalTarget,
		StartDate: DefaultGoalStartDate,
	}

	if cfg == nil {
		return goal
	}

	if cfg.FinancialGoalTarget != nil {
		goal.Target = *cfg.FinancialGoalTarget
	}
	if cfg.FinancialGoalStartDate != nil {
		goal.StartDate = *cfg.FinancialGoalStartDate
	}

	return goal
}
