package subscription

import (
	"time"

	"github.com/hendrikschneider/silver/internal/types"
)

type Subscription struct {
	// ID is the unique identifier for the subscription
	ID string `db:"id" json:"id"`

	// CustomerID is the identifier for the customer in our system
	CustomerID string `db:"customer_id" json:"customer_id"`

	// PlanID is the identifier for the plan in our system
	PlanID string `db:"plan_id" json:"plan_id"`

	// SubscriptionStatus is the status of the subscription
	SubscriptionStatus types.SubscriptionStatus `db:"subscription_status" json:"subscription_status"`

	// StartDate is the start date of the subscription
	StartDate time.Time `db:"start_date" json:"start_date"`

	// TrialEnd is the end date of the trial period
	TrialEnd *time.Time `db:"trial_end" json:"trial_end"`

	// NextBillingAt is the date of the next cycle the subscription has not
	// been billed for yet. It advances each time a charge is appended to a
	// document, which is what keeps a subscription billed at most once per cycle.
	NextBillingAt time.Time `db:"next_billing_at" json:"next_billing_at"`

	// CancelledAt is the date the subscription was cancelled
	CancelledAt *time.Time `db:"cancelled_at" json:"cancelled_at"`

	// EndedAt is the date the subscription was ended
	EndedAt *time.Time `db:"ended_at" json:"ended_at"`

	types.BaseModel
}

// End transitions a cancelled subscription to ended. The transition is only
// ever applied after the subscription has been billed in the current run.
func (s *Subscription) End(at time.Time) {
	s.SubscriptionStatus = types.SubscriptionStatusEnded
	s.EndedAt = &at
}
