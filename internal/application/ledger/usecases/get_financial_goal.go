package usecases

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/domain/ledger"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

type GetFinancialGoalUseCase struct {
	transactionRepo ledger.TransactionRepository
	salesConfigRepo ledger.SalesConfigRepository
	logger          logger.Interface
}

func NewGetFinancialGoalUseCase(
	transactionRepo ledger.TransactionRepository,
	salesConfigRepo ledger.SalesConfigRepository,
	logger logger.Interface,
) *GetFinancialGoalUseCase {
	return &GetFinancialGoalUseCase{
		transactionRepo: transactionRepo,
		salesConfigRepo: salesConfigRepo,
		logger:          logger,
	}
}

// Execute derives goal progress for the tenant. Goal current equals the
// metrics gross total, so the same aggregation runs underneath; the goal
// is never cached because it is cheap relative to its staleness cost.
func (uc *GetFinancialGoalUseCase) Execute(ctx context.Context, tenantID uint) (*ledger.FinancialGoal, error) {
	transactions, err := uc.transactionRepo.ListByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction ledger: %w", err)
	}

	cfg, err := uc.salesConfigRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		uc.logger.Warnw("sales config read failed, using defaults", "tenant_id", tenantID, "error", err)
		cfg = nil
	}

	metrics := ledger.ComputeSalesMetrics(transactions, cfg)
	goal := ledger.ComputeFinancialGoal(metrics.GrossTotal, cfg)

	return &goal, nil
}
