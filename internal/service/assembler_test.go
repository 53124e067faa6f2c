package service

import (
	"testing"
	"time"

	"github.com/hendrikschneider/silver/internal/domain/customer"
	"github.com/hendrikschneider/silver/internal/domain/document"
	"github.com/hendrikschneider/silver/internal/domain/plan"
	"github.com/hendrikschneider/silver/internal/domain/provider"
	"github.com/hendrikschneider/silver/internal/domain/subscription"
	ierr "github.com/hendrikschneider/silver/internal/errors"
	"github.com/hendrikschneider/silver/internal/testutil"
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AssemblerServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DocumentAssemblerService
	cust    *customer.Customer
	prov    *provider.Provider
	plan    *plan.Plan
}

func TestDocumentAssemblerService(t *testing.T) {
	suite.Run(t, new(AssemblerServiceSuite))
}

func (s *AssemblerServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	s.cust = &customer.Customer{
		ID:                  types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:                "acme",
		ConsolidatedBilling: true,
		PaymentDueDays:      15,
		BaseModel:           types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), s.cust))

	s.prov = &provider.Provider{
		ID:                    types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROVIDER),
		Name:                  "provider-x",
		Flow:                  types.DocumentFlowInvoice,
		DefaultDocumentStatus: types.DocumentStatusDraft,
		BaseModel:             types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ProviderRepo.Create(s.GetContext(), s.prov))

	s.plan = &plan.Plan{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:       "api",
		ProviderID: s.prov.ID,
		Currency:   "usd",
		Amount:     decimal.NewFromInt(10),
		BaseModel:  types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), s.plan))

	s.service = NewDocumentAssemblerService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Clock:        s.GetClock(),
		CustomerRepo: s.GetStores().CustomerRepo,
		ProviderRepo: s.GetStores().ProviderRepo,
		PlanRepo:     s.GetStores().PlanRepo,
		SubRepo:      s.GetStores().SubscriptionRepo,
		DocumentRepo: s.GetStores().DocumentRepo,
	})
}

func (s *AssemblerServiceSuite) newSubscription() *subscription.Subscription {
	sub := &subscription.Subscription{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		CustomerID:         s.cust.ID,
		PlanID:             s.plan.ID,
		SubscriptionStatus: types.SubscriptionStatusActive,
		StartDate:          time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		NextBillingAt:      time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		BaseModel:          types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), sub))
	return sub
}

func (s *AssemblerServiceSuite) TestConsolidatedSubscriptionsShareTheCachedDocument() {
	billingDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	cache := make(map[string]*document.Document)

	first, err := s.service.Assemble(s.GetContext(), s.prov, s.cust, s.newSubscription(), billingDate, cache)
	s.NoError(err)
	second, err := s.service.Assemble(s.GetContext(), s.prov, s.cust, s.newSubscription(), billingDate, cache)
	s.NoError(err)

	s.Same(first, second)
	s.Len(cache, 1)
	s.Len(first.LineItems, 2)
	s.Nil(first.SubscriptionID)
	s.Equal(time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC), first.DueDate)
}

func (s *AssemblerServiceSuite) TestNilCacheCreatesSubscriptionScopedDocument() {
	billingDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	subA := s.newSubscription()
	subB := s.newSubscription()

	first, err := s.service.Assemble(s.GetContext(), s.prov, s.cust, subA, billingDate, nil)
	s.NoError(err)
	second, err := s.service.Assemble(s.GetContext(), s.prov, s.cust, subB, billingDate, nil)
	s.NoError(err)

	s.NotEqual(first.ID, second.ID)
	s.Require().NotNil(first.SubscriptionID)
	s.Equal(subA.ID, *first.SubscriptionID)
	s.Require().NotNil(second.SubscriptionID)
	s.Equal(subB.ID, *second.SubscriptionID)
}

func (s *AssemblerServiceSuite) TestNonConsolidatedCustomerIgnoresCache() {
	s.cust.ConsolidatedBilling = false
	billingDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	cache := make(map[string]*document.Document)

	first, err := s.service.Assemble(s.GetContext(), s.prov, s.cust, s.newSubscription(), billingDate, cache)
	s.NoError(err)
	second, err := s.service.Assemble(s.GetContext(), s.prov, s.cust, s.newSubscription(), billingDate, cache)
	s.NoError(err)

	s.NotEqual(first.ID, second.ID)
	s.Empty(cache)
}

func (s *AssemblerServiceSuite) TestUnknownProviderFlowFailsBeforeCreatingAnything() {
	s.prov.Flow = types.DocumentFlow("receipt")

	_, err := s.service.Assemble(s.GetContext(), s.prov, s.cust, s.newSubscription(),
		time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), nil)
	s.Error(err)
	s.True(ierr.IsValidation(err))

	docs, listErr := s.GetStores().DocumentRepo.List(s.GetContext(), types.NewNoLimitDocumentFilter())
	s.NoError(listErr)
	s.Empty(docs)
}
