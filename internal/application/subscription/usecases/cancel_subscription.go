package usecases

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/domain/subscription"
	apperrors "github.com/ledgerline/ledgerline/internal/shared/errors"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

// CancelSubscriptionCommand carries a cancel intent for the current tenant.
type CancelSubscriptionCommand struct {
	TenantID uint
}

type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	checkout         CheckoutProvider
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	checkout CheckoutProvider,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		checkout:         checkout,
		logger:           logger,
	}
}

// Execute flags the tenant's subscription to end at the period boundary.
// The provider-side cancellation goes through CancelRemote first; a local
// flip without the remote call would let local and provider state diverge.
func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*subscription.Subscription, error) {
	existing, err := uc.subscriptionRepo.GetByTenantID(ctx, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("no subscription exists for this tenant")
	}

	if err := uc.checkout.CancelRemote(ctx, cmd.TenantID); err != nil {
		uc.logger.Errorw("provider cancellation failed, keeping local state unchanged",
			"tenant_id", cmd.TenantID, "error", err)
		return nil, apperrors.NewUnavailableError("provider cancellation failed", err.Error())
	}

	existing.RequestCancellation()

	if err := uc.subscriptionRepo.Upsert(ctx, existing); err != nil {
		uc.logger.Errorw("failed to persist cancellation",
			"tenant_id", cmd.TenantID, "error", err)
		return nil, fmt.Errorf("failed to persist cancellation: %w", err)
	}

	uc.logger.Infow("cancellation requested",
		"tenant_id", cmd.TenantID,
		"current_period_end", existing.CurrentPeriodEnd())

	return existing, nil
}
