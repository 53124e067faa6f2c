package service

import (
	"context"
	"time"

	"github.com/hendrikschneider/silver/internal/domain/customer"
	"github.com/hendrikschneider/silver/internal/domain/document"
	"github.com/hendrikschneider/silver/internal/domain/provider"
	"github.com/hendrikschneider/silver/internal/domain/subscription"
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/samber/lo"
)

// DocumentAssemblerService obtains or creates the target document for a
// subscription and appends the subscription's charge to it. It owns the one
// document per provider per customer per cycle consolidation rule.
type DocumentAssemblerService interface {
	// Assemble routes the subscription's charge onto a document. For a
	// consolidated customer the cache maps provider id to the document every
	// subscription under that provider lands on; the cache is scoped to one
	// customer's processing within one run and must not be shared beyond it.
	// A nil cache forces a fresh document scoped to this single subscription.
	Assemble(ctx context.Context, prov *provider.Provider, cust *customer.Customer, sub *subscription.Subscription, billingDate time.Time, cache map[string]*document.Document) (*document.Document, error)
}

type documentAssemblerService struct {
	ServiceParams
}

func NewDocumentAssemblerService(params ServiceParams) DocumentAssemblerService {
	return &documentAssemblerService{
		ServiceParams: params,
	}
}

func (s *documentAssemblerService) Assemble(
	ctx context.Context,
	prov *provider.Provider,
	cust *customer.Customer,
	sub *subscription.Subscription,
	billingDate time.Time,
	cache map[string]*document.Document,
) (*document.Document, error) {
	consolidated := cust.ConsolidatedBilling && cache != nil

	var doc *document.Document
	if consolidated {
		doc = cache[prov.ID]
	}

	if doc == nil {
		flow, err := document.FlowFor(prov.Flow)
		if err != nil {
			return nil, err
		}

		dueDate := types.ResolveDueDate(billingDate, cust.PaymentDueDays)
		doc = document.New(ctx, flow, prov.ID, cust.ID, dueDate)
		if !consolidated {
			doc.SubscriptionID = lo.ToPtr(sub.ID)
		}

		if err := s.DocumentRepo.Create(ctx, doc); err != nil {
			return nil, err
		}

		if consolidated {
			cache[prov.ID] = doc
		}

		s.Logger.Debugw("created billing document",
			"document_id", doc.ID,
			"document_type", doc.DocumentType,
			"provider_id", prov.ID,
			"customer_id", cust.ID,
			"due_date", dueDate,
			"consolidated", consolidated)
	}

	if err := s.GetCharger().AddChargeToDocument(ctx, sub, doc, billingDate); err != nil {
		return nil, err
	}

	return doc, nil
}
