// Package checkout integrates the external payment provider's hosted
// checkout. Purchases never touch local state directly: the operator is
// redirected to the provider and the resulting order_paid webhook is the
// actual state transition.
package checkout

import (
	"context"

	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

// HostedCheckout maps plan IDs to hosted checkout URLs from config.
type HostedCheckout struct {
	links  map[string]string
	logger logger.Interface
}

func NewHostedCheckout(links map[string]string, logger logger.Interface) *HostedCheckout {
	if links == nil {
		links = map[string]string{}
	}
	return &HostedCheckout{
		links:  links,
		logger: logger,
	}
}

// CheckoutURL returns the hosted checkout URL for the plan, and whether
// one is configured.
func (p *HostedCheckout) CheckoutURL(planID string) (string, bool) {
	url, ok := p.links[planID]
	return url, ok
}

// CancelRemote is the seam for the provider's cancellation API.
// TODO: call the provider's cancellation endpoint once API credentials
// are provisioned; until then local and provider state can diverge on
// operator-initiated cancels.
func (p *HostedCheckout) CancelRemote(ctx context.Context, tenantID uint) error {
	p.logger.Warnw("provider cancellation API not configured, canceling locally only",
		"tenant_id", tenantID)
	return nil
}
