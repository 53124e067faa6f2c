package subscription

import (
	"context"
	"time"

	"github.com/hendrikschneider/silver/internal/domain/document"
)

// Charger is the capability a subscription exposes to a generation run:
// deciding whether it must be billed for a given cycle and appending its
// computed charge onto a billing document. The generation core never computes
// charge amounts itself; it only decides whether a subscription is billed and
// onto which document.
type Charger interface {
	// ShouldBeBilled reports whether the subscription must be billed for the
	// given billing date. It must be a pure function of the subscription state
	// and the billing date, callable repeatedly within one run.
	ShouldBeBilled(ctx context.Context, sub *Subscription, billingDate time.Time) (bool, error)

	// AddChargeToDocument computes the subscription's charge for the cycle
	// anchored at billingDate and appends it as a line item on the given
	// document, persisting both the document and any subscription bookkeeping.
	AddChargeToDocument(ctx context.Context, sub *Subscription, doc *document.Document, billingDate time.Time) error
}
