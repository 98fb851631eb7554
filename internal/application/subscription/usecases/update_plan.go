package usecases

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/domain/subscription"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
	"github.com/ledgerline/ledgerline/internal/shared/utils"
)

// CheckoutProvider abstracts the external hosted checkout. CheckoutURL
// reports whether the plan has a hosted purchase flow; CancelRemote is
// the seam for the provider's cancellation API.
type CheckoutProvider interface {
	CheckoutURL(planID string) (string, bool)
	CancelRemote(ctx context.Context, tenantID uint) error
}

// UpdatePlanCommand carries a plan-change intent for the current tenant.
type UpdatePlanCommand struct {
	TenantID uint
	PlanID   string
}

// UpdatePlanResult is either a redirect to the hosted checkout (the
// eventual order_paid webhook performs the real transition) or the
// directly updated subscription for plans without a checkout mapping.
type UpdatePlanResult struct {
	CheckoutURL  string
	Subscription *subscription.Subscription
}

type UpdatePlanUseCase struct {
	subscriptionRepo subscription.Repository
	checkout         CheckoutProvider
	logger           logger.Interface
}

func NewUpdatePlanUseCase(
	subscriptionRepo subscription.Repository,
	checkout CheckoutProvider,
	logger logger.Interface,
) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		subscriptionRepo: subscriptionRepo,
		checkout:         checkout,
		logger:           logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*UpdatePlanResult, error) {
	if err := utils.ValidatePlanID(cmd.PlanID); err != nil {
		return nil, err
	}

	if url, ok := uc.checkout.CheckoutURL(cmd.PlanID); ok {
		uc.logger.Infow("redirecting plan change to hosted checkout",
			"tenant_id", cmd.TenantID, "plan_id", cmd.PlanID)
		return &UpdatePlanResult{CheckoutURL: url}, nil
	}

	// No checkout mapping: direct local activation. Used only in
	// environments without a configured external checkout.
	existing, err := uc.subscriptionRepo.GetByTenantID(ctx, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	var target *subscription.Subscription
	if existing == nil {
		target, err = subscription.NewFromPlanChange(cmd.TenantID, cmd.PlanID)
		if err != nil {
			return nil, err
		}
	} else {
		if err := existing.ChangePlan(cmd.PlanID); err != nil {
			return nil, err
		}
		target = existing
	}

	if err := uc.subscriptionRepo.Upsert(ctx, target); err != nil {
		uc.logger.Errorw("failed to persist plan change",
			"tenant_id", cmd.TenantID, "plan_id", cmd.PlanID, "error", err)
		return nil, fmt.Errorf("failed to persist plan change: %w", err)
	}

	uc.logger.Infow("plan changed directly",
		"tenant_id", cmd.TenantID, "plan_id", cmd.PlanID)

	return &UpdatePlanResult{Subscription: target}, nil
}
