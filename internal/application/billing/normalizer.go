// Package billing normalizes provider webhook payloads into canonical
// billing events.
package billing

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerline/ledgerline/internal/domain/billing"
)

// webhookPayload is the tolerant superset of the provider's delivery
// shapes. Field matching is case-insensitive, so "Customer" and
// "customer" both land in the nested struct. The event kind arrives in
// webhook_event_type on newer deliveries and only in order_status on
// older ones.
type webhookPayload struct {
	WebhookEventType string `json:"webhook_event_type"`
	Event            string `json:"event"`
	OrderStatus      string `json:"order_status"`

	OrderID string `json:"order_id"`

	CustomerEmail string `json:"customer_email"`
	Customer      struct {
		Email string `json:"email"`
	} `json:"customer"`

	ProductID string `json:"product_id"`
	Product   struct {
		ID     string `json:"id"`
		PlanID string `json:"plan_id"`
	} `json:"product"`

	CreatedAt string `json:"created_at"`
	Timestamp string `json:"timestamp"`
}

var eventKinds = map[string]billing.EventKind{
	"order_paid":             billing.KindOrderPaid,
	"order.paid":             billing.KindOrderPaid,
	"paid":                   billing.KindOrderPaid,
	"approved":               billing.KindOrderPaid,
	"subscription_canceled":  billing.KindSubscriptionCanceled,
	"subscription_cancelled": billing.KindSubscriptionCanceled,
	"subscription.canceled":  billing.KindSubscriptionCanceled,
	"canceled":               billing.KindSubscriptionCanceled,
	"cancelled":              billing.KindSubscriptionCanceled,
	"refund":                 billing.KindRefund,
	"refunded":               billing.KindRefund,
	"order_refunded":         billing.KindRefund,
	"chargeback":             billing.KindRefund,
}

// Normalize maps a raw webhook body into a canonical event. Unknown kinds
// come back as KindUnrecognized rather than an error so the caller can
// acknowledge receipt without side effects. Recognized events without a
// customer email return billing.ErrMissingEmail.
func Normalize(body []byte) (*billing.Event, error) {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("unparseable webhook body: %w", err)
	}

	event := &billing.Event{
		Kind:       resolveKind(&payload),
		Email:      resolveEmail(&payload),
		OrderID:    payload.OrderID,
		PlanID:     resolvePlanID(&payload),
		OccurredAt: resolveTimestamp(&payload),
	}

	if !event.Recognized() {
		return event, nil
	}
	if event.Email == "" {
		return nil, billing.ErrMissingEmail
	}

	return event, nil
}

func resolveKind(p *webhookPayload) billing.EventKind {
	for _, raw := range []string{p.WebhookEventType, p.Event, p.OrderStatus} {
		if raw == "" {
			continue
		}
		if kind, ok := eventKinds[strings.ToLower(strings.TrimSpace(raw))]; ok {
			return kind
		}
		// A present but unknown type field wins over the fallbacks.
		return billing.KindUnrecognized
	}
	return billing.KindUnrecognized
}

func resolveEmail(p *webhookPayload) string {
	if email := strings.TrimSpace(p.Customer.Email); email != "" {
		return email
	}
	return strings.TrimSpace(p.CustomerEmail)
}

func resolvePlanID(p *webhookPayload) string {
	if p.Product.PlanID != "" {
		return p.Product.PlanID
	}
	if p.Product.ID != "" {
		return p.Product.ID
	}
	return p.ProductID
}

func resolveTimestamp(p *webhookPayload) *time.Time {
	for _, raw := range []string{p.CreatedAt, p.Timestamp} {
		if raw == "" {
			continue
		}
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			utc := ts.UTC()
			return &utc
		}
	}
	return nil
}
