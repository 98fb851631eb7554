package usecases

import (
	"context"
	"errors"

	appBilling "github.com/ledgerline/ledgerline/internal/application/billing"
	tenantApp "github.com/ledgerline/ledgerline/internal/application/tenant"
	"github.com/ledgerline/ledgerline/internal/domain/billing"
	"github.com/ledgerline/ledgerline/internal/domain/subscription"
	"github.com/ledgerline/ledgerline/internal/domain/tenant"
	apperrors "github.com/ledgerline/ledgerline/internal/shared/errors"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

// Outcome of a webhook delivery. Everything except "applied" is an
// acknowledged no-op; store write failures surface as errors instead so
// the provider's retry contract kicks in.
const (
	OutcomeApplied            = "applied"
	OutcomeStale              = "stale"
	OutcomeMissingEmail       = "missing_email"
	OutcomeUnresolvableTenant = "unresolvable_tenant"
	OutcomeUnrecognizedEvent  = "unrecognized_event"
)

// MetricsInvalidator drops cached derived metrics for a tenant after a
// state-changing write. Optional.
type MetricsInvalidator interface {
	Invalidate(ctx context.Context, tenantID uint) error
}

// ProcessWebhookResult reports how a delivery was handled.
type ProcessWebhookResult struct {
	Outcome  string
	TenantID uint
}

type ProcessWebhookUseCase struct {
	subscriptionRepo   subscription.Repository
	resolver           *tenantApp.Resolver
	metricsInvalidator MetricsInvalidator // Optional
	periodDays         int
	logger             logger.Interface
}

func NewProcessWebhookUseCase(
	subscriptionRepo subscription.Repository,
	resolver *tenantApp.Resolver,
	periodDays int,
	logger logger.Interface,
) *ProcessWebhookUseCase {
	return &ProcessWebhookUseCase{
		subscriptionRepo: subscriptionRepo,
		resolver:         resolver,
		periodDays:       periodDays,
		logger:           logger,
	}
}

// SetMetricsInvalidator sets the metrics cache invalidator (optional dependency injection)
func (uc *ProcessWebhookUseCase) SetMetricsInvalidator(inv MetricsInvalidator) {
	uc.metricsInvalidator = inv
}

// Execute normalizes, attributes, and reconciles one webhook delivery.
// Each delivery is handled independently; all durable state lives in the
// tenant-keyed store and every write is an idempotent full overwrite.
func (uc *ProcessWebhookUseCase) Execute(ctx context.Context, body []byte) (*ProcessWebhookResult, error) {
	event, err := appBilling.Normalize(body)
	if err != nil {
		if errors.Is(err, billing.ErrMissingEmail) {
			uc.logger.Warnw("webhook delivery carries no customer email, acknowledging without changes")
			return &ProcessWebhookResult{Outcome: OutcomeMissingEmail}, nil
		}
		uc.logger.Warnw("malformed webhook body", "error", err)
		return nil, apperrors.NewValidationError("malformed webhook payload", err.Error())
	}

	if !event.Recognized() {
		uc.logger.Infow("unrecognized webhook event kind, acknowledging without changes",
			"order_id", event.OrderID)
		return &ProcessWebhookResult{Outcome: OutcomeUnrecognizedEvent}, nil
	}

	tenantID, err := uc.resolver.Resolve(ctx, event.Email)
	if err != nil {
		if errors.Is(err, tenant.ErrProfileNotFound) || errors.Is(err, tenant.ErrMembershipNotFound) {
			// The resolver already logged which hop failed.
			return &ProcessWebhookResult{Outcome: OutcomeUnresolvableTenant}, nil
		}
		uc.logger.Errorw("tenant resolution failed", "error", err)
		return nil, apperrors.NewUnavailableError("tenant resolution failed", err.Error())
	}

	existing, err := uc.subscriptionRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "tenant_id", tenantID, "error", err)
		return nil, apperrors.NewUnavailableError("failed to load subscription", err.Error())
	}

	if existing != nil && existing.StaleFor(event.OccurredAt) {
		uc.logger.Warnw("rejecting stale webhook event",
			"tenant_id", tenantID,
			"kind", event.Kind,
			"order_id", event.OrderID,
			"event_at", event.OccurredAt,
			"last_event_at", existing.LastEventAt())
		return &ProcessWebhookResult{Outcome: OutcomeStale, TenantID: tenantID}, nil
	}

	target, err := uc.reconcile(existing, tenantID, event)
	if err != nil {
		uc.logger.Errorw("failed to build target subscription state",
			"tenant_id", tenantID, "kind", event.Kind, "error", err)
		return nil, apperrors.NewValidationError("invalid webhook event", err.Error())
	}

	if err := uc.subscriptionRepo.Upsert(ctx, target); err != nil {
		uc.logger.Errorw("subscription upsert failed, provider should retry",
			"tenant_id", tenantID, "kind", event.Kind, "error", err)
		return nil, apperrors.NewUnavailableError("failed to persist subscription state", err.Error())
	}

	if uc.metricsInvalidator != nil {
		if err := uc.metricsInvalidator.Invalidate(ctx, tenantID); err != nil {
			uc.logger.Warnw("failed to invalidate cached metrics", "tenant_id", tenantID, "error", err)
		}
	}

	uc.logger.Infow("webhook event applied",
		"tenant_id", tenantID,
		"kind", event.Kind,
		"order_id", event.OrderID,
		"plan_id", event.PlanID)

	return &ProcessWebhookResult{Outcome: OutcomeApplied, TenantID: tenantID}, nil
}

// reconcile maps a canonical event onto the tenant's subscription state
// machine and returns the full target state for the upsert. The provider
// timestamp is passed through as-is; the aggregate falls back to the
// local clock for the paid-period anchor only, never for the ordering
// watermark.
func (uc *ProcessWebhookUseCase) reconcile(existing *subscription.Subscription, tenantID uint, event *billing.Event) (*subscription.Subscription, error) {
	switch {
	case event.Kind == billing.KindOrderPaid && existing == nil:
		return subscription.NewFromOrderPaid(tenantID, event.PlanID, event.OrderID, event.Email, event.OccurredAt, uc.periodDays)

	case event.Kind == billing.KindOrderPaid:
		if err := existing.ApplyOrderPaid(event.PlanID, event.OrderID, event.Email, event.OccurredAt, uc.periodDays); err != nil {
			return nil, err
		}
		return existing, nil

	case event.Terminates() && existing == nil:
		// A cancellation for a tenant that never had a row is created
		// directly in the canceled state so provenance is retained.
		sub, err := subscription.NewFromOrderPaid(tenantID, orFallbackPlan(event.PlanID), event.OrderID, event.Email, event.OccurredAt, uc.periodDays)
		if err != nil {
			return nil, err
		}
		sub.ApplyTermination(event.OrderID, event.Email, event.OccurredAt)
		return sub, nil

	default:
		existing.ApplyTermination(event.OrderID, event.Email, event.OccurredAt)
		return existing, nil
	}
}

func orFallbackPlan(planID string) string {
	if planID == "" {
		return "unknown"
	}
	return planID
}
