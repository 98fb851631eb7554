package usecases

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/domain/subscription"
	apperrors "github.com/ledgerline/ledgerline/internal/shared/errors"
)

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
}

func NewGetSubscriptionUseCase(subscriptionRepo subscription.Repository) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{subscriptionRepo: subscriptionRepo}
}

// Execute reads the tenant's subscription fresh from the store.
func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
	sub, err := uc.subscriptionRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("no subscription exists for this tenant")
	}
	return sub, nil
}
