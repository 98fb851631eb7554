package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ledgerline/ledgerline/internal/domain/subscription"
	"github.com/ledgerline/ledgerline/internal/infrastructure/persistence/mappers"
	"github.com/ledgerline/ledgerline/internal/infrastructure/persistence/models"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(
	db *gorm.DB,
	logger logger.Interface,
) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

// Upsert writes the full subscription state keyed by tenant_id. The write
// is an unconditional overwrite rather than read-modify-write, so
// concurrent or duplicate deliveries for the same tenant converge on the
// same end state without per-tenant locking.
func (r *SubscriptionRepositoryImpl) Upsert(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"plan_id",
			"status",
			"cancel_at_period_end",
			"current_period_end",
			"external_order_id",
			"external_customer_email",
			"last_event_at",
			"updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert subscription", "tenant_id", model.TenantID, "error", err)
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	r.logger.Debugw("subscription upserted",
		"tenant_id", model.TenantID,
		"plan_id", model.PlanID,
		"status", model.Status)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByTenantID(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by tenant ID", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
