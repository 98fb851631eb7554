package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeFinancialGoal_Defaults(t *testing.T) {
	goal := ComputeFinancialGoal(dec("250"), nil)

	assert.True(t, goal.Current.Equal(dec("250")))
	assert.True(t, goal.Target.Equal(dec("100000")))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), goal.StartDate)
}

func TestComputeFinancialGoal_ConfiguredTargetAndStart(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := &SalesConfig{
		FinancialGoalTarget:    decPtr("50000"),
		FinancialGoalStartDate: &start,
	}

	goal := ComputeFinancialGoal(decimal.Zero, cfg)

	assert.True(t, goal.Target.Equal(dec("50000")))
	assert.Equal(t, start, goal.StartDate)
}

func TestComputeFinancialGoal_PartialConfig(t *testing.T) {
	cfg := &SalesConfig{FinancialGoalTarget: decPtr("75000")}

	goal := ComputeFinancialGoal(dec("10"), cfg)

	assert.True(t, goal.Target.Equal(dec("75000")))
	assert.Equal(t, DefaultGoalStartDate, goal.StartDate)
}
