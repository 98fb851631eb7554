package valueobjects

// SubscriptionStatus represents the lifecycle state of a tenant subscription.
type SubscriptionStatus string

const (
	StatusActive   SubscriptionStatus = "active"
	StatusCanceled SubscriptionStatus = "canceled"
)

// ValidStatuses is the set of statuses accepted from persistence.
var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:   true,
	StatusCanceled: true,
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsActive reports whether the subscription still grants entitlements.
// A pending cancellation stays active until the period end sweep runs.
func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}
