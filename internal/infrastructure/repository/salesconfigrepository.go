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

type SalesConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LedgerMapper
	logger logger.Interface
}

func NewSalesConfigRepository(
	db *gorm.DB,
	logger logger.Interface,
) ledger.SalesConfigRepository {
	return &SalesConfigRepositoryImpl{
		db:     db,
		mapper: mappers.NewLedgerMapper(),
		logger: logger,
	}
}

// GetByTenantID returns nil when the tenant never configured sales
// settings. Absence is a normal state, not an error.
func (r *SalesConfigRepositoryImpl) GetByTenantID(ctx context.Context, tenantID uint) (*ledger.SalesConfig, error) {
	var model models.SalesConfigModel

	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get sales config", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to get sales config: %w", err)
	}

	return r.mapper.SalesConfigToEntity(&model)
}
