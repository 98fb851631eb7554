package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ledgerline/ledgerline/internal/domain/tenant"
	"github.com/ledgerline/ledgerline/internal/infrastructure/persistence/mappers"
	"github.com/ledgerline/ledgerline/internal/infrastructure/persistence/models"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

type TenantDirectoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
	logger logger.Interface
}

func NewTenantDirectoryRepository(
	db *gorm.DB,
	logger logger.Interface,
) tenant.DirectoryRepository {
	return &TenantDirectoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewTenantMapper(),
		logger: logger,
	}
}

func (r *TenantDirectoryRepositoryImpl) GetProfileByEmail(ctx context.Context, email string) (*tenant.AccountProfile, error) {
	var model models.AccountProfileModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get account profile by email", "error", err)
		return nil, fmt.Errorf("failed to get account profile: %w", err)
	}

	return r.mapper.ProfileToEntity(&model), nil
}

func (r *TenantDirectoryRepositoryImpl) GetMembershipByAccountID(ctx context.Context, accountID uint) (*tenant.TenantMembership, error) {
	var model models.TenantMembershipModel

	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tenant membership", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to get tenant membership: %w", err)
	}

	return r.mapper.MembershipToEntity(&model), nil
}
