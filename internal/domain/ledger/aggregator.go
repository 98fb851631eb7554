package ledger

import "github.com/shopspring/decimal"

// Default split percentages, applied when the tenant has no sales
// configuration or a percentage field fails numeric coercion.
var (
	DefaultPlatformFeePercentage = decimal.RequireFromString("0.05")
	DefaultExpertSplitPercentage = decimal.RequireFromString("0.60")
	DefaultTeamSplitPercentage   = decimal.RequireFromString("0.40")
)

// ComputeSalesMetrics derives the tenant's sales metrics from the full
// transaction list and the optional sales configuration. cfg may be nil;
// the computation then runs on pure defaults. The function is pure and
// safe to invoke concurrently.
func ComputeSalesMetrics(transactions []Transaction, cfg *SalesConfig) SalesMetrics {
	transactionSum := decimal.Zero
	for _, tx := range transactions {
		if tx.Approved() {
			transactionSum = transactionSum.Add(tx.Amount)
		}
	}

	metrics := SalesMetrics{
		GrossTotal:            transactionSum,
		PlatformFeePercentage: DefaultPlatformFeePercentage,
		ExpertSplitPercentage: DefaultExpertSplitPercentage,
		TeamSplitPercentage:   DefaultTeamSplitPercentage,
		CustomTaxes:           []CustomTax{},
	}

	if cfg == nil {
		return metrics
	}

	// An explicitly set manual figure always wins, including zero.
	if cfg.ManualGrossRevenue != nil {
		metrics.GrossTotal = *cfg.ManualGrossRevenue
		metrics.ManualGrossRevenue = cfg.ManualGrossRevenue
	}
	metrics.ManualDailyAverage = cfg.ManualDailyAverage
	metrics.ManualProjectionDays = cfg.ManualProjectionDays

	metrics.PlatformFeePercentage = coercePercentage(cfg.PlatformFeePercentage, DefaultPlatformFeePercentage)
	metrics.ExpertSplitPercentage = coercePercentage(cfg.ExpertSplitPercentage, DefaultExpertSplitPercentage)
	metrics.TeamSplitPercentage = coercePercentage(cfg.TeamSplitPercentage, DefaultTeamSplitPercentage)

	if len(cfg.CustomTaxes) > 0 {
		metrics.CustomTaxes = cfg.CustomTaxes
	}

	return metrics
}

// coercePercentage parses an operator-entered percentage string, falling
// back to the default on anything non-numeric.
func coercePercentage(raw string, def decimal.Decimal) decimal.Decimal {
	if raw == "" {
		return def
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return def
	}
	return value
}
