package service

import (
	"testing"
	"time"

	"github.com/hendrikschneider/silver/internal/domain/document"
	"github.com/hendrikschneider/silver/internal/domain/plan"
	"github.com/hendrikschneider/silver/internal/domain/subscription"
	"github.com/hendrikschneider/silver/internal/testutil"
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ChargeServiceSuite struct {
	testutil.BaseServiceTestSuite
	charger subscription.Charger
	plan    *plan.Plan
}

func TestSubscriptionChargeService(t *testing.T) {
	suite.Run(t, new(ChargeServiceSuite))
}

func (s *ChargeServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	s.plan = &plan.Plan{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:       "api",
		ProviderID: "prov_1",
		Currency:   "usd",
		Amount:     decimal.NewFromInt(10),
		BaseModel:  types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), s.plan))

	s.charger = NewSubscriptionChargeService(ServiceParams{
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

func (s *ChargeServiceSuite) newSubscription() *subscription.Subscription {
	sub := &subscription.Subscription{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		CustomerID:         "cust_1",
		PlanID:             s.plan.ID,
		SubscriptionStatus: types.SubscriptionStatusActive,
		StartDate:          time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		NextBillingAt:      time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		BaseModel:          types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), sub))
	return sub
}

func (s *ChargeServiceSuite) TestShouldBeBilled() {
	sub := s.newSubscription()
	billingDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	// Cycle reached
	billed, err := s.charger.ShouldBeBilled(s.GetContext(), sub, billingDate)
	s.NoError(err)
	s.True(billed)

	// Not started yet
	sub.StartDate = time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	billed, err = s.charger.ShouldBeBilled(s.GetContext(), sub, billingDate)
	s.NoError(err)
	s.False(billed)
	sub.StartDate = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	// Still in trial
	sub.TrialEnd = lo.ToPtr(time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC))
	billed, err = s.charger.ShouldBeBilled(s.GetContext(), sub, billingDate)
	s.NoError(err)
	s.False(billed)

	// Trial ended exactly on the billing date counts as over
	sub.TrialEnd = lo.ToPtr(billingDate)
	billed, err = s.charger.ShouldBeBilled(s.GetContext(), sub, billingDate)
	s.NoError(err)
	s.True(billed)
	sub.TrialEnd = nil

	// Already billed for this cycle
	sub.NextBillingAt = time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	billed, err = s.charger.ShouldBeBilled(s.GetContext(), sub, billingDate)
	s.NoError(err)
	s.False(billed)
}

func (s *ChargeServiceSuite) TestAddChargeAppendsFlatAmountAndAdvancesCycle() {
	sub := s.newSubscription()
	billingDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	doc := document.New(s.GetContext(), document.Flow{
		Kind:         types.DocumentTypeInvoice,
		NumberPrefix: types.SHORT_ID_PREFIX_INVOICE,
	}, "prov_1", "cust_1", billingDate.AddDate(0, 0, 15))
	s.NoError(s.GetStores().DocumentRepo.Create(s.GetContext(), doc))

	s.NoError(s.charger.AddChargeToDocument(s.GetContext(), sub, doc, billingDate))

	s.Require().Len(doc.LineItems, 1)
	item := doc.LineItems[0]
	s.Equal(sub.ID, item.SubscriptionID)
	s.Equal(s.plan.ID, item.PlanID)
	s.True(item.Amount.Equal(decimal.NewFromInt(10)))
	s.Equal("usd", item.Currency)
	s.Equal(billingDate, *item.PeriodStart)
	s.Equal(billingDate.AddDate(0, 1, 0), *item.PeriodEnd)

	s.True(doc.AmountDue.Equal(decimal.NewFromInt(10)))
	s.Equal("usd", doc.Currency)

	// Both the document and the advanced cycle are persisted
	stored, err := s.GetStores().DocumentRepo.Get(s.GetContext(), doc.ID)
	s.NoError(err)
	s.Len(stored.LineItems, 1)

	storedSub, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), sub.ID)
	s.NoError(err)
	s.Equal(billingDate.AddDate(0, 1, 0), storedSub.NextBillingAt)
}

func (s *ChargeServiceSuite) TestAddChargeUnknownPlan() {
	sub := s.newSubscription()
	sub.PlanID = "plan_missing"

	doc := document.New(s.GetContext(), document.Flow{
		Kind:         types.DocumentTypeInvoice,
		NumberPrefix: types.SHORT_ID_PREFIX_INVOICE,
	}, "prov_1", "cust_1", time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC))
	s.NoError(s.GetStores().DocumentRepo.Create(s.GetContext(), doc))

	err := s.charger.AddChargeToDocument(s.GetContext(), sub, doc, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))
	s.Error(err)
	s.Empty(doc.LineItems)
}
