package service

import (
	"context"
	"time"

	"github.com/hendrikschneider/silver/internal/domain/subscription"
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/samber/lo"
)

// BillingPolicyService decides, per subscription, whether it must be billed
// this cycle and whether billing should also trigger its termination
type BillingPolicyService interface {
	// IsEligible reports whether the subscription must be billed for the given
	// billing date. Subscriptions outside the billable states are skipped
	// before the eligibility predicate is even evaluated; an unknown state is
	// inert, not an error.
	IsEligible(ctx context.Context, sub *subscription.Subscription, billingDate time.Time) (bool, error)

	// RequiresTermination reports whether billing the subscription must be
	// followed by ending it. Termination is applied only after successful
	// billing, never for a subscription that was not eligible this cycle.
	RequiresTermination(sub *subscription.Subscription) bool
}

type billingPolicyService struct {
	ServiceParams
}

func NewBillingPolicyService(params ServiceParams) BillingPolicyService {
	return &billingPolicyService{
		ServiceParams: params,
	}
}

func (s *billingPolicyService) IsEligible(ctx context.Context, sub *subscription.Subscription, billingDate time.Time) (bool, error) {
	if !lo.Contains(types.BillableSubscriptionStatuses(), sub.SubscriptionStatus) {
		return false, nil
	}
	return s.GetCharger().ShouldBeBilled(ctx, sub, billingDate)
}

func (s *billingPolicyService) RequiresTermination(sub *subscription.Subscription) bool {
	return sub.SubscriptionStatus == types.SubscriptionStatusCancelled
}
