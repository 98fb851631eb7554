package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(amount string, status TransactionStatus) Transaction {
	return Transaction{
		TenantID: 1,
		Amount:   decimal.RequireFromString(amount),
		Status:   status,
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestComputeSalesMetrics_SumsOnlyApproved(t *testing.T) {
	transactions := []Transaction{
		tx("100", TxApproved),
		tx("50", TxPending),
		tx("30", TxRefunded),
	}

	metrics := ComputeSalesMetrics(transactions, nil)

	assert.True(t, metrics.GrossTotal.Equal(dec("100")),
		"gross_total = %s, want 100", metrics.GrossTotal)
}

func TestComputeSalesMetrics_NoConfigDefaults(t *testing.T) {
	metrics := ComputeSalesMetrics(nil, nil)

	assert.True(t, metrics.GrossTotal.Equal(decimal.Zero))
	assert.True(t, metrics.PlatformFeePercentage.Equal(dec("0.05")))
	assert.True(t, metrics.ExpertSplitPercentage.Equal(dec("0.60")))
	assert.True(t, metrics.TeamSplitPercentage.Equal(dec("0.40")))
	assert.NotNil(t, metrics.CustomTaxes)
	assert.Empty(t, metrics.CustomTaxes)
	assert.Nil(t, metrics.ManualGrossRevenue)
}

func TestComputeSalesMetrics_ManualOverrideWins(t *testing.T) {
	transactions := []Transaction{tx("100", TxApproved)}
	cfg := &SalesConfig{ManualGrossRevenue: decPtr("500")}

	metrics := ComputeSalesMetrics(transactions, cfg)

	assert.True(t, metrics.GrossTotal.Equal(dec("500")),
		"gross_total = %s, want manual override 500", metrics.GrossTotal)
	assert.NotNil(t, metrics.ManualGrossRevenue)
}

func TestComputeSalesMetrics_ExplicitZeroOverride(t *testing.T) {
	transactions := []Transaction{tx("100", TxApproved)}
	cfg := &SalesConfig{ManualGrossRevenue: decPtr("0")}

	metrics := ComputeSalesMetrics(transactions, cfg)

	assert.True(t, metrics.GrossTotal.Equal(decimal.Zero),
		"gross_total = %s, an explicit zero override must win over the ledger sum", metrics.GrossTotal)
}

func TestComputeSalesMetrics_NilManualUsesLedger(t *testing.T) {
	transactions := []Transaction{tx("100", TxApproved)}
	cfg := &SalesConfig{}

	metrics := ComputeSalesMetrics(transactions, cfg)

	assert.True(t, metrics.GrossTotal.Equal(dec("100")))
	assert.Nil(t, metrics.ManualGrossRevenue)
}

func TestComputeSalesMetrics_PercentageCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want decimal.Decimal
	}{
		{"valid percentage", "0.10", dec("0.10")},
		{"empty falls back to default", "", dec("0.05")},
		{"non-numeric falls back to default", "abc", dec("0.05")},
		{"zero is a valid value", "0", decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &SalesConfig{PlatformFeePercentage: tt.raw}
			metrics := ComputeSalesMetrics(nil, cfg)
			assert.True(t, metrics.PlatformFeePercentage.Equal(tt.want),
				"platform_fee_percentage = %s, want %s", metrics.PlatformFeePercentage, tt.want)
		})
	}
}

func TestComputeSalesMetrics_OneBadPercentageDoesNotPoisonOthers(t *testing.T) {
	cfg := &SalesConfig{
		PlatformFeePercentage: "not-a-number",
		ExpertSplitPercentage: "0.70",
		TeamSplitPercentage:   "0.30",
	}

	metrics := ComputeSalesMetrics(nil, cfg)

	assert.True(t, metrics.PlatformFeePercentage.Equal(dec("0.05")))
	assert.True(t, metrics.ExpertSplitPercentage.Equal(dec("0.70")))
	assert.True(t, metrics.TeamSplitPercentage.Equal(dec("0.30")))
}

func TestComputeSalesMetrics_CustomTaxesPreserveOrder(t *testing.T) {
	cfg := &SalesConfig{
		CustomTaxes: []CustomTax{
			{Label: "vat", Percentage: dec("0.20")},
			{Label: "levy", Percentage: dec("0.02")},
		},
	}

	metrics := ComputeSalesMetrics(nil, cfg)

	assert.Len(t, metrics.CustomTaxes, 2)
	assert.Equal(t, "vat", metrics.CustomTaxes[0].Label)
	assert.Equal(t, "levy", metrics.CustomTaxes[1].Label)
}
