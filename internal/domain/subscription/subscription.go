package subscription

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/ledgerline/ledgerline/internal/domain/subscription/valueobjects"
)

// Subscription represents the subscription aggregate root. Exactly one
// row exists per tenant; every webhook-driven write is a full overwrite
// of the target state, which makes duplicate deliveries idempotent.
type Subscription struct {
	tenantID              uint
	planID                string
	status                vo.SubscriptionStatus
	cancelAtPeriodEnd     bool
	currentPeriodEnd      *time.Time
	externalOrderID       string
	externalCustomerEmail string
	lastEventAt           *time.Time
	createdAt             time.Time
	updatedAt             time.Time
}

// NewFromOrderPaid creates the subscription state an order_paid event
// targets. periodDays controls how far out the paid period extends.
// A nil occurredAt anchors the paid period on the local clock but leaves
// lastEventAt unset: the ordering guard only ever compares provider
// timestamps, never a locally substituted one.
func NewFromOrderPaid(tenantID uint, planID, orderID, email string, occurredAt *time.Time, periodDays int) (*Subscription, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if strings.TrimSpace(planID) == "" {
		return nil, fmt.Errorf("plan ID is required")
	}
	if periodDays <= 0 {
		return nil, fmt.Errorf("period days must be positive, got %d", periodDays)
	}

	now := time.Now().UTC()
	periodAnchor := now
	if occurredAt != nil {
		periodAnchor = *occurredAt
	}
	periodEnd := periodAnchor.Add(time.Duration(periodDays) * 24 * time.Hour)

	sub := &Subscription{
		tenantID:              tenantID,
		planID:                planID,
		status:                vo.StatusActive,
		cancelAtPeriodEnd:     false,
		currentPeriodEnd:      &periodEnd,
		externalOrderID:       orderID,
		externalCustomerEmail: email,
		createdAt:             now,
		updatedAt:             now,
	}
	if occurredAt != nil {
		eventAt := *occurredAt
		sub.lastEventAt = &eventAt
	}
	return sub, nil
}

// NewFromPlanChange creates an active subscription for a direct plan-change
// intent, used when no hosted checkout mapping exists for the plan.
func NewFromPlanChange(tenantID uint, planID string) (*Subscription, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if strings.TrimSpace(planID) == "" {
		return nil, fmt.Errorf("plan ID is required")
	}

	now := time.Now().UTC()
	return &Subscription{
		tenantID:  tenantID,
		planID:    planID,
		status:    vo.StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a subscription from persistence.
func Reconstruct(
	tenantID uint,
	planID string,
	status vo.SubscriptionStatus,
	cancelAtPeriodEnd bool,
	currentPeriodEnd *time.Time,
	externalOrderID, externalCustomerEmail string,
	lastEventAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		tenantID:              tenantID,
		planID:                planID,
		status:                status,
		cancelAtPeriodEnd:     cancelAtPeriodEnd,
		currentPeriodEnd:      currentPeriodEnd,
		externalOrderID:       externalOrderID,
		externalCustomerEmail: externalCustomerEmail,
		lastEventAt:           lastEventAt,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}, nil
}

// TenantID returns the owning tenant ID
func (s *Subscription) TenantID() uint {
	return s.tenantID
}

// PlanID returns the plan catalog key
func (s *Subscription) PlanID() string {
	return s.planID
}

// Status returns the subscription status
func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

// CancelAtPeriodEnd reports whether the subscription ends when the
// current period passes
func (s *Subscription) CancelAtPeriodEnd() bool {
	return s.cancelAtPeriodEnd
}

// CurrentPeriodEnd returns the end of the paid period, nil when unknown
func (s *Subscription) CurrentPeriodEnd() *time.Time {
	return s.currentPeriodEnd
}

// ExternalOrderID returns the provider order behind the last webhook write
func (s *Subscription) ExternalOrderID() string {
	return s.externalOrderID
}

// ExternalCustomerEmail returns the customer email behind the last webhook write
func (s *Subscription) ExternalCustomerEmail() string {
	return s.externalCustomerEmail
}

// LastEventAt returns the provider timestamp of the last applied event
func (s *Subscription) LastEventAt() *time.Time {
	return s.lastEventAt
}

// CreatedAt returns the creation time
func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last modification time
func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// StaleFor reports whether an event timestamp is not strictly newer than
// the last applied provider event. Deliveries are neither ordered nor
// deduplicated by the provider, so a late-retried order_paid must not
// overwrite a later cancellation. Events without a timestamp are never
// considered stale.
func (s *Subscription) StaleFor(occurredAt *time.Time) bool {
	if occurredAt == nil || s.lastEventAt == nil {
		return false
	}
	return !occurredAt.After(*s.lastEventAt)
}

// ApplyOrderPaid overwrites the subscription with the state an order_paid
// event targets. Ordering is guarded by the caller via StaleFor. As with
// NewFromOrderPaid, only a real provider timestamp moves lastEventAt; a
// nil occurredAt anchors the paid period on the local clock and leaves
// the guard's watermark where it was.
func (s *Subscription) ApplyOrderPaid(planID, orderID, email string, occurredAt *time.Time, periodDays int) error {
	if strings.TrimSpace(planID) == "" {
		return fmt.Errorf("plan ID is required")
	}
	if periodDays <= 0 {
		return fmt.Errorf("period days must be positive, got %d", periodDays)
	}

	periodAnchor := time.Now().UTC()
	if occurredAt != nil {
		periodAnchor = *occurredAt
	}
	periodEnd := periodAnchor.Add(time.Duration(periodDays) * 24 * time.Hour)

	s.planID = planID
	s.status = vo.StatusActive
	s.cancelAtPeriodEnd = false
	s.currentPeriodEnd = &periodEnd
	s.externalOrderID = orderID
	s.externalCustomerEmail = email
	if occurredAt != nil {
		eventAt := *occurredAt
		s.lastEventAt = &eventAt
	}
	s.updatedAt = time.Now().UTC()
	return nil
}

// ApplyTermination handles subscription_canceled and refund events. The
// plan is retained for provenance; only the status flips.
func (s *Subscription) ApplyTermination(orderID, email string, occurredAt *time.Time) {
	s.status = vo.StatusCanceled
	s.cancelAtPeriodEnd = true
	if orderID != "" {
		s.externalOrderID = orderID
	}
	if email != "" {
		s.externalCustomerEmail = email
	}
	if occurredAt != nil {
		eventAt := *occurredAt
		s.lastEventAt = &eventAt
	}
	s.updatedAt = time.Now().UTC()
}

// ChangePlan switches the plan through the direct intent path and
// reactivates the subscription.
func (s *Subscription) ChangePlan(planID string) error {
	if strings.TrimSpace(planID) == "" {
		return fmt.Errorf("plan ID is required")
	}
	s.planID = planID
	s.status = vo.StatusActive
	s.cancelAtPeriodEnd = false
	s.updatedAt = time.Now().UTC()
	return nil
}

// RequestCancellation flags the subscription to end at the period
// boundary. Entitlements remain until the downstream sweep flips the
// status after current_period_end passes.
func (s *Subscription) RequestCancellation() {
	s.cancelAtPeriodEnd = true
	s.updatedAt = time.Now().UTC()
}
