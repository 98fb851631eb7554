package tenant

import "errors"

// The two resolution failures are deliberately distinct: both end in an
// acknowledged no-op, but they point at different data problems and are
// reported separately in logs.
var (
	ErrProfileNotFound    = errors.New("no account profile for email")
	ErrMembershipNotFound = errors.New("account has no tenant membership")
)
