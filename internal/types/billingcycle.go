package types

import (
	"time"

	ierr "github.com/hendrikschneider/silver/internal/errors"
	"github.com/samber/lo"
)

// BillingRunMode selects how the billing date for a generation run is anchored.
// A scheduled run bills the whole cycle (first day of the current month); an
// on demand run bills a single subscription as of now, typically when it is
// ended immediately.
type BillingRunMode string

const (
	BillingRunModeScheduled BillingRunMode = "scheduled"
	BillingRunModeOnDemand  BillingRunMode = "on_demand"
)

func (m BillingRunMode) String() string {
	return string(m)
}

func (m BillingRunMode) Validate() error {
	allowed := []BillingRunMode{
		BillingRunModeScheduled,
		BillingRunModeOnDemand,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid billing run mode").
			WithHint("Please provide a valid billing run mode").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ResolveBillingDate returns the canonical billing date for a run. The billing
// date is computed once per run and shared across customers so a run that
// straddles a date rollover stays on a single cycle.
func ResolveBillingDate(now time.Time, mode BillingRunMode) time.Time {
	if mode == BillingRunModeScheduled {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return now
}

// ResolveDueDate returns the billing date shifted by the customer's configured
// payment due offset in calendar days.
func ResolveDueDate(billingDate time.Time, paymentDueDays int) time.Time {
	return billingDate.AddDate(0, 0, paymentDueDays)
}
