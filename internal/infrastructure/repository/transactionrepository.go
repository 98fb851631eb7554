package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ledgerline/ledgerline/internal/domain/ledger"
	"github.com/ledgerline/ledgerline/internal/infrastructure/persistence/mappers"
	"github.com/ledgerline/ledgerline/internal/infrastructure/persistence/models"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

type TransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LedgerMapper
	logger logger.Interface
}

func NewTransactionRepository(
	db *gorm.DB,
	logger logger.Interface,
) ledger.TransactionRepository {
	return &TransactionRepositoryImpl{
		db:     db,
		mapper: mappers.NewLedgerMapper(),
		logger: logger,
	}
}

func (r *TransactionRepositoryImpl) ListByTenantID(ctx context.Context, tenantID uint) ([]ledger.Transaction, error) {
	var txModels []*models.TransactionModel

	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("date ASC").
		Find(&txModels).Error
	if err != nil {
		r.logger.Errorw("failed to list transactions", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return r.mapper.TransactionsToEntities(txModels), nil
}
