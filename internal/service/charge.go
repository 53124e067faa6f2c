package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hendrikschneider/silver/internal/domain/document"
	"github.com/hendrikschneider/silver/internal/domain/subscription"
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// subscriptionChargeService is the default subscription.Charger. It bills a
// flat plan amount once per monthly cycle: a subscription should be billed
// when its next billing date has been reached and its trial is over, and
// appending the charge advances the next billing date so the subscription is
// billed at most once per cycle.
type subscriptionChargeService struct {
	ServiceParams
}

func NewSubscriptionChargeService(params ServiceParams) subscription.Charger {
	return &subscriptionChargeService{
		ServiceParams: params,
	}
}

func (s *subscriptionChargeService) ShouldBeBilled(ctx context.Context, sub *subscription.Subscription, billingDate time.Time) (bool, error) {
	if billingDate.Before(sub.StartDate) {
		return false, nil
	}
	if sub.TrialEnd != nil && billingDate.Before(*sub.TrialEnd) {
		return false, nil
	}
	return !sub.NextBillingAt.After(billingDate), nil
}

func (s *subscriptionChargeService) AddChargeToDocument(ctx context.Context, sub *subscription.Subscription, doc *document.Document, billingDate time.Time) error {
	p, err := s.PlanRepo.Get(ctx, sub.PlanID)
	if err != nil {
		return err
	}

	periodStart := billingDate
	periodEnd := billingDate.AddDate(0, 1, 0)

	item := &document.LineItem{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOCUMENT_LINE_ITEM),
		SubscriptionID: sub.ID,
		PlanID:         p.ID,
		DisplayName:    p.Name,
		Amount:         p.Amount,
		Quantity:       decimal.NewFromInt(1),
		Currency:       p.Currency,
		PeriodStart:    lo.ToPtr(periodStart),
		PeriodEnd:      lo.ToPtr(periodEnd),
		Metadata: types.Metadata{
			"description": fmt.Sprintf("%s (%s)", p.Name, doc.DocumentType),
		},
		BaseModel: types.GetDefaultBaseModel(ctx),
	}

	if err := doc.AddLineItem(item); err != nil {
		return err
	}

	if err := s.DocumentRepo.Update(ctx, doc); err != nil {
		return err
	}

	// Advancing the next billing date is what keeps the subscription from
	// being billed twice for the same cycle.
	sub.NextBillingAt = periodEnd
	if err := s.SubRepo.Update(ctx, sub); err != nil {
		return err
	}

	s.Logger.Debugw("appended subscription charge to document",
		"subscription_id", sub.ID,
		"document_id", doc.ID,
		"amount", item.Amount,
		"billing_date", billingDate)

	return nil
}
