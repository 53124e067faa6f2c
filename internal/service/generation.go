package service

import (
	"context"
	"time"

	"github.com/hendrikschneider/silver/internal/domain/customer"
	"github.com/hendrikschneider/silver/internal/domain/document"
	"github.com/hendrikschneider/silver/internal/domain/provider"
	"github.com/hendrikschneider/silver/internal/domain/subscription"
	"github.com/hendrikschneider/silver/internal/types"
)

// DocumentGenerationService is the entry point for billing document
// generation. A full run walks every customer and produces the documents for
// the current cycle; a single subscription run bills one subscription as of
// now, typically because it is being ended immediately.
type DocumentGenerationService interface {
	// GenerateAll runs a scheduled generation pass over all customers. A
	// customer's configuration error aborts the run; documents already
	// committed for earlier customers stay committed, so callers must not
	// treat a run as globally transactional.
	GenerateAll(ctx context.Context) error

	// GenerateForSubscription bills a single subscription dated now,
	// independent of the owning customer's consolidation setting.
	GenerateForSubscription(ctx context.Context, subscriptionID string) error
}

type documentGenerationService struct {
	ServiceParams
}

func NewDocumentGenerationService(params ServiceParams) DocumentGenerationService {
	return &documentGenerationService{
		ServiceParams: params,
	}
}

func (s *documentGenerationService) GenerateAll(ctx context.Context) error {
	// Resolved once and shared across customers so a run that straddles a
	// date rollover stays on one cycle.
	billingDate := types.ResolveBillingDate(s.Clock.Now(), types.BillingRunModeScheduled)

	customers, err := s.CustomerRepo.List(ctx, types.NewNoLimitCustomerFilter())
	if err != nil {
		return err
	}

	s.Logger.Infow("starting full generation run",
		"billing_date", billingDate,
		"customers", len(customers))

	for _, cust := range customers {
		if cust.ConsolidatedBilling {
			err = s.generateConsolidated(ctx, cust, billingDate)
		} else {
			err = s.generatePerSubscription(ctx, cust, billingDate)
		}
		if err != nil {
			s.Logger.Errorw("generation run aborted",
				"customer_id", cust.ID,
				"error", err)
			return err
		}
	}

	s.Logger.Infow("full generation run complete", "billing_date", billingDate)
	return nil
}

func (s *documentGenerationService) GenerateForSubscription(ctx context.Context, subscriptionID string) error {
	sub, err := s.SubRepo.Get(ctx, subscriptionID)
	if err != nil {
		return err
	}

	cust, err := s.CustomerRepo.Get(ctx, sub.CustomerID)
	if err != nil {
		return err
	}

	prov, err := s.resolveProvider(ctx, sub, nil)
	if err != nil {
		return err
	}

	billingDate := types.ResolveBillingDate(s.Clock.Now(), types.BillingRunModeOnDemand)

	s.Logger.Infow("starting single subscription generation run",
		"subscription_id", sub.ID,
		"billing_date", billingDate)

	assembler := NewDocumentAssemblerService(s.ServiceParams)
	lifecycle := NewDocumentLifecycleService(s.ServiceParams)

	// A single subscription run is never consolidated with other
	// subscriptions, whatever the customer's setting says.
	doc, err := assembler.Assemble(ctx, prov, cust, sub, billingDate, nil)
	if err != nil {
		return err
	}

	if err := lifecycle.FinalizeSubscription(ctx, sub); err != nil {
		return err
	}
	return lifecycle.FinalizeDocument(ctx, prov, doc)
}

// generateConsolidated routes every eligible subscription of the customer
// onto one document per provider, then finalizes each document only after the
// whole subscription loop has contributed its charges.
func (s *documentGenerationService) generateConsolidated(ctx context.Context, cust *customer.Customer, billingDate time.Time) error {
	subs, err := s.listBillableSubscriptions(ctx, cust)
	if err != nil {
		return err
	}

	policy := NewBillingPolicyService(s.ServiceParams)
	assembler := NewDocumentAssemblerService(s.ServiceParams)
	lifecycle := NewDocumentLifecycleService(s.ServiceParams)

	// One document per provider for this customer's run. The cache lives and
	// dies inside this call so it cannot leak across customers or runs.
	cache := make(map[string]*document.Document)
	providers := make(map[string]*provider.Provider)

	for _, sub := range subs {
		eligible, err := policy.IsEligible(ctx, sub, billingDate)
		if err != nil {
			return err
		}
		if !eligible {
			continue
		}

		prov, err := s.resolveProvider(ctx, sub, providers)
		if err != nil {
			return err
		}

		if _, err := assembler.Assemble(ctx, prov, cust, sub, billingDate, cache); err != nil {
			return err
		}

		if err := lifecycle.FinalizeSubscription(ctx, sub); err != nil {
			return err
		}
	}

	for providerID, doc := range cache {
		if err := lifecycle.FinalizeDocument(ctx, providers[providerID], doc); err != nil {
			return err
		}
	}

	return nil
}

// generatePerSubscription gives every eligible subscription its own document,
// finalized immediately.
func (s *documentGenerationService) generatePerSubscription(ctx context.Context, cust *customer.Customer, billingDate time.Time) error {
	subs, err := s.listBillableSubscriptions(ctx, cust)
	if err != nil {
		return err
	}

	policy := NewBillingPolicyService(s.ServiceParams)
	assembler := NewDocumentAssemblerService(s.ServiceParams)
	lifecycle := NewDocumentLifecycleService(s.ServiceParams)

	for _, sub := range subs {
		eligible, err := policy.IsEligible(ctx, sub, billingDate)
		if err != nil {
			return err
		}
		if !eligible {
			continue
		}

		prov, err := s.resolveProvider(ctx, sub, nil)
		if err != nil {
			return err
		}

		doc, err := assembler.Assemble(ctx, prov, cust, sub, billingDate, nil)
		if err != nil {
			return err
		}

		if err := lifecycle.FinalizeSubscription(ctx, sub); err != nil {
			return err
		}

		if err := lifecycle.FinalizeDocument(ctx, prov, doc); err != nil {
			return err
		}
	}

	return nil
}

func (s *documentGenerationService) listBillableSubscriptions(ctx context.Context, cust *customer.Customer) ([]*subscription.Subscription, error) {
	filter := types.NewNoLimitSubscriptionFilter()
	filter.CustomerID = cust.ID
	filter.SubscriptionStatus = types.BillableSubscriptionStatuses()
	return s.SubRepo.List(ctx, filter)
}

// resolveProvider walks subscription -> plan -> provider. The memo map, when
// given, avoids refetching the same provider for every subscription of a
// customer.
func (s *documentGenerationService) resolveProvider(ctx context.Context, sub *subscription.Subscription, memo map[string]*provider.Provider) (*provider.Provider, error) {
	p, err := s.PlanRepo.Get(ctx, sub.PlanID)
	if err != nil {
		return nil, err
	}

	if memo != nil {
		if prov, ok := memo[p.ProviderID]; ok {
			return prov, nil
		}
	}

	prov, err := s.ProviderRepo.Get(ctx, p.ProviderID)
	if err != nil {
		return nil, err
	}

	if memo != nil {
		memo[p.ProviderID] = prov
	}
	return prov, nil
}
