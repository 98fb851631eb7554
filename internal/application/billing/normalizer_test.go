package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/domain/billing"
)

func TestNormalize_OrderPaid(t *testing.T) {
	body := []byte(`{
		"webhook_event_type": "order_paid",
		"Customer": {"email": "buyer@example.com"},
		"Product": {"id": "pro"},
		"order_id": "ORD-1",
		"created_at": "2025-03-10T12:00:00Z"
	}`)

	event, err := Normalize(body)
	require.NoError(t, err)

	assert.Equal(t, billing.KindOrderPaid, event.Kind)
	assert.Equal(t, "buyer@example.com", event.Email)
	assert.Equal(t, "ORD-1", event.OrderID)
	assert.Equal(t, "pro", event.PlanID)
	require.NotNil(t, event.OccurredAt)
	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), *event.OccurredAt)
}

func TestNormalize_KindSources(t *testing.T) {
	tests := []struct {
		name string
		body string
		want billing.EventKind
	}{
		{"webhook_event_type", `{"webhook_event_type": "order_paid", "customer_email": "a@x.com"}`, billing.KindOrderPaid},
		{"event field fallback", `{"event": "subscription_canceled", "customer_email": "a@x.com"}`, billing.KindSubscriptionCanceled},
		{"order_status fallback", `{"order_status": "refunded", "customer_email": "a@x.com"}`, billing.KindRefund},
		{"british spelling", `{"webhook_event_type": "subscription_cancelled", "customer_email": "a@x.com"}`, billing.KindSubscriptionCanceled},
		{"mixed case", `{"webhook_event_type": "Order_Paid", "customer_email": "a@x.com"}`, billing.KindOrderPaid},
		{"chargeback maps to refund", `{"webhook_event_type": "chargeback", "customer_email": "a@x.com"}`, billing.KindRefund},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := Normalize([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, event.Kind)
		})
	}
}

func TestNormalize_UnknownKindIsUnrecognizedNotError(t *testing.T) {
	event, err := Normalize([]byte(`{"webhook_event_type": "invoice_generated", "customer_email": "a@x.com"}`))
	require.NoError(t, err)
	assert.Equal(t, billing.KindUnrecognized, event.Kind)
	assert.False(t, event.Recognized())
}

func TestNormalize_UnknownTypeWinsOverFallbacks(t *testing.T) {
	// A present but unknown webhook_event_type must not fall through to
	// order_status and silently apply the wrong transition.
	event, err := Normalize([]byte(`{
		"webhook_event_type": "invoice_generated",
		"order_status": "paid",
		"customer_email": "a@x.com"
	}`))
	require.NoError(t, err)
	assert.Equal(t, billing.KindUnrecognized, event.Kind)
}

func TestNormalize_EmailSources(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"nested customer object", `{"webhook_event_type": "order_paid", "customer": {"email": "nested@x.com"}}`, "nested@x.com"},
		{"capitalized customer key", `{"webhook_event_type": "order_paid", "Customer": {"email": "cap@x.com"}}`, "cap@x.com"},
		{"flat customer_email", `{"webhook_event_type": "order_paid", "customer_email": "flat@x.com"}`, "flat@x.com"},
		{"nested wins over flat", `{"webhook_event_type": "order_paid", "customer": {"email": "nested@x.com"}, "customer_email": "flat@x.com"}`, "nested@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := Normalize([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, event.Email)
		})
	}
}

func TestNormalize_MissingEmail(t *testing.T) {
	_, err := Normalize([]byte(`{"webhook_event_type": "order_paid", "order_id": "ORD-1"}`))
	assert.True(t, errors.Is(err, billing.ErrMissingEmail))
}

func TestNormalize_MissingEmailOnUnrecognizedIsFine(t *testing.T) {
	event, err := Normalize([]byte(`{"webhook_event_type": "something_else"}`))
	require.NoError(t, err)
	assert.Equal(t, billing.KindUnrecognized, event.Kind)
}

func TestNormalize_PlanIDSources(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"product plan_id", `{"webhook_event_type": "order_paid", "customer_email": "a@x.com", "product": {"plan_id": "team"}}`, "team"},
		{"product id fallback", `{"webhook_event_type": "order_paid", "customer_email": "a@x.com", "product": {"id": "pro"}}`, "pro"},
		{"flat product_id fallback", `{"webhook_event_type": "order_paid", "customer_email": "a@x.com", "product_id": "basic"}`, "basic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := Normalize([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, event.PlanID)
		})
	}
}

func TestNormalize_Timestamp(t *testing.T) {
	t.Run("unparseable timestamp yields nil", func(t *testing.T) {
		event, err := Normalize([]byte(`{"webhook_event_type": "order_paid", "customer_email": "a@x.com", "created_at": "03/10/2025"}`))
		require.NoError(t, err)
		assert.Nil(t, event.OccurredAt)
	})

	t.Run("timestamp field fallback", func(t *testing.T) {
		event, err := Normalize([]byte(`{"webhook_event_type": "order_paid", "customer_email": "a@x.com", "timestamp": "2025-03-10T12:00:00+02:00"}`))
		require.NoError(t, err)
		require.NotNil(t, event.OccurredAt)
		assert.Equal(t, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), *event.OccurredAt)
	})
}

func TestNormalize_MalformedBody(t *testing.T) {
	_, err := Normalize([]byte(`{not json`))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, billing.ErrMissingEmail))
}
