package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/domain/subscription"
	vo "github.com/ledgerline/ledgerline/internal/domain/subscription/valueobjects"
	apperrors "github.com/ledgerline/ledgerline/internal/shared/errors"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type fakeSubscriptionRepo struct {
	byTenant  map[uint]*subscription.Subscription
	upserts   int
	upsertErr error
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{byTenant: make(map[uint]*subscription.Subscription)}
}

func (r *fakeSubscriptionRepo) Upsert(ctx context.Context, sub *subscription.Subscription) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.upserts++
	r.byTenant[sub.TenantID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) GetByTenantID(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
	return r.byTenant[tenantID], nil
}

type fakeCheckout struct {
	links     map[string]string
	cancelErr error
	canceled  []uint
}

func (c *fakeCheckout) CheckoutURL(planID string) (string, bool) {
	url, ok := c.links[planID]
	return url, ok
}

func (c *fakeCheckout) CancelRemote(ctx context.Context, tenantID uint) error {
	if c.cancelErr != nil {
		return c.cancelErr
	}
	c.canceled = append(c.canceled, tenantID)
	return nil
}

func activeSubscription(t *testing.T, tenantID uint, planID string) *subscription.Subscription {
	t.Helper()
	paidAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	sub, err := subscription.NewFromOrderPaid(tenantID, planID, "ORD-1", "buyer@example.com", &paidAt, 30)
	require.NoError(t, err)
	return sub
}

func TestUpdatePlan_MappedPlanRedirectsWithoutWrite(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	checkout := &fakeCheckout{links: map[string]string{"pro": "https://checkout.example.com/pro"}}
	uc := NewUpdatePlanUseCase(repo, checkout, newNopLogger())

	result, err := uc.Execute(context.Background(), UpdatePlanCommand{TenantID: 42, PlanID: "pro"})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.example.com/pro", result.CheckoutURL)
	assert.Nil(t, result.Subscription)
	assert.Equal(t, 0, repo.upserts, "redirect must not change local state")
}

func TestUpdatePlan_UnmappedPlanActivatesDirectly(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	checkout := &fakeCheckout{}
	uc := NewUpdatePlanUseCase(repo, checkout, newNopLogger())

	result, err := uc.Execute(context.Background(), UpdatePlanCommand{TenantID: 42, PlanID: "internal-beta"})
	require.NoError(t, err)

	assert.Empty(t, result.CheckoutURL)
	require.NotNil(t, result.Subscription)
	assert.Equal(t, "internal-beta", result.Subscription.PlanID())
	assert.Equal(t, vo.StatusActive, result.Subscription.Status())
	assert.Equal(t, 1, repo.upserts)
}

func TestUpdatePlan_ExistingSubscriptionSwitchesPlan(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	existing := activeSubscription(t, 42, "basic")
	existing.RequestCancellation()
	repo.byTenant[42] = existing

	uc := NewUpdatePlanUseCase(repo, &fakeCheckout{}, newNopLogger())

	result, err := uc.Execute(context.Background(), UpdatePlanCommand{TenantID: 42, PlanID: "team"})
	require.NoError(t, err)

	assert.Equal(t, "team", result.Subscription.PlanID())
	assert.False(t, result.Subscription.CancelAtPeriodEnd(), "plan change clears a pending cancellation")
}

func TestUpdatePlan_EmptyPlanRejected(t *testing.T) {
	uc := NewUpdatePlanUseCase(newFakeSubscriptionRepo(), &fakeCheckout{}, newNopLogger())

	_, err := uc.Execute(context.Background(), UpdatePlanCommand{TenantID: 42, PlanID: " "})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCancelSubscription_FlagsWithoutStatusFlip(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.byTenant[42] = activeSubscription(t, 42, "pro")
	checkout := &fakeCheckout{}
	uc := NewCancelSubscriptionUseCase(repo, checkout, newNopLogger())

	sub, err := uc.Execute(context.Background(), CancelSubscriptionCommand{TenantID: 42})
	require.NoError(t, err)

	assert.True(t, sub.CancelAtPeriodEnd())
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, []uint{42}, checkout.canceled, "provider cancellation must run")
}

func TestCancelSubscription_NoSubscription(t *testing.T) {
	uc := NewCancelSubscriptionUseCase(newFakeSubscriptionRepo(), &fakeCheckout{}, newNopLogger())

	_, err := uc.Execute(context.Background(), CancelSubscriptionCommand{TenantID: 42})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCancelSubscription_RemoteFailureKeepsLocalState(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.byTenant[42] = activeSubscription(t, 42, "pro")
	checkout := &fakeCheckout{cancelErr: errors.New("provider 502")}
	uc := NewCancelSubscriptionUseCase(repo, checkout, newNopLogger())

	_, err := uc.Execute(context.Background(), CancelSubscriptionCommand{TenantID: 42})
	assert.True(t, apperrors.IsUnavailableError(err))
	assert.False(t, repo.byTenant[42].CancelAtPeriodEnd(), "local state must not change when the provider call fails")
	assert.Equal(t, 0, repo.upserts)
}

func TestGetSubscription(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.byTenant[42] = activeSubscription(t, 42, "pro")
	uc := NewGetSubscriptionUseCase(repo)

	sub, err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "pro", sub.PlanID())

	_, err = uc.Execute(context.Background(), 99)
	assert.True(t, apperrors.IsNotFoundError(err))
}
