package mappers

import (
	"fmt"

	"github.com/ledgerline/ledgerline/internal/domain/subscription"
	vo "github.com/ledgerline/ledgerline/internal/domain/subscription/valueobjects"
	"github.com/ledgerline/ledgerline/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.SubscriptionStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	entity, err := subscription.Reconstruct(
		model.TenantID,
		model.PlanID,
		status,
		model.CancelAtPeriodEnd,
		model.CurrentPeriodEnd,
		model.ExternalOrderID,
		model.ExternalCustomerEmail,
		model.LastEventAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		TenantID:              entity.TenantID(),
		PlanID:                entity.PlanID(),
		Status:                entity.Status().String(),
		CancelAtPeriodEnd:     entity.CancelAtPeriodEnd(),
		CurrentPeriodEnd:      entity.CurrentPeriodEnd(),
		ExternalOrderID:       entity.ExternalOrderID(),
		ExternalCustomerEmail: entity.ExternalCustomerEmail(),
		LastEventAt:           entity.LastEventAt(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}, nil
}
