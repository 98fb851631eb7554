// Package billing defines the canonical, provider-agnostic representation
// of payment-provider webhook deliveries.
package billing

import (
	"errors"
	"time"
)

// EventKind identifies the canonical kind of a webhook delivery.
type EventKind string

const (
	KindOrderPaid            EventKind = "order_paid"
	KindSubscriptionCanceled EventKind = "subscription_canceled"
	KindRefund               EventKind = "refund"
	// KindUnrecognized marks deliveries whose kind could not be mapped.
	// They are acknowledged without side effects.
	KindUnrecognized EventKind = "unrecognized"
)

// ErrMissingEmail is returned when a recognized event carries no customer
// email in any of the known payload shapes. Such deliveries can never be
// attributed to a tenant.
var ErrMissingEmail = errors.New("webhook payload carries no customer email")

// Event is the canonical billing event produced by the normalizer.
// OccurredAt is nil when the payload carried no parseable timestamp.
type Event struct {
	Kind       EventKind
	Email      string
	OrderID    string
	PlanID     string
	OccurredAt *time.Time
}

// Recognized reports whether the event kind maps to a state transition.
func (e *Event) Recognized() bool {
	return e.Kind != KindUnrecognized
}

// Terminates reports whether the event ends the subscription.
func (e *Event) Terminates() bool {
	return e.Kind == KindSubscriptionCanceled || e.Kind == KindRefund
}
