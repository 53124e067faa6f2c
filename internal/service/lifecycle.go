package service

import (
	"context"

	"github.com/hendrikschneider/silver/internal/domain/document"
	"github.com/hendrikschneider/silver/internal/domain/provider"
	"github.com/hendrikschneider/silver/internal/domain/subscription"
	"github.com/hendrikschneider/silver/internal/types"
)

// DocumentLifecycleService applies the state transitions that follow document
// assembly: ending a cancelled subscription once it has been billed, and
// issuing a document when the owning provider's configuration demands it.
type DocumentLifecycleService interface {
	// FinalizeSubscription ends the subscription if it was cancelled, now that
	// it has been billed in the current run. It runs per subscription as it is
	// processed, regardless of whether the document is later issued.
	FinalizeSubscription(ctx context.Context, sub *subscription.Subscription) error

	// FinalizeDocument issues the document if the provider's default document
	// state asks for immediate issuance. It must only run once every charge
	// destined for the document has been appended; issuing earlier would
	// freeze the document before a later subscription contributes its charge.
	FinalizeDocument(ctx context.Context, prov *provider.Provider, doc *document.Document) error
}

type documentLifecycleService struct {
	ServiceParams
}

func NewDocumentLifecycleService(params ServiceParams) DocumentLifecycleService {
	return &documentLifecycleService{
		ServiceParams: params,
	}
}

func (s *documentLifecycleService) FinalizeSubscription(ctx context.Context, sub *subscription.Subscription) error {
	policy := NewBillingPolicyService(s.ServiceParams)
	if !policy.RequiresTermination(sub) {
		return nil
	}

	sub.End(s.Clock.Now())
	if err := s.SubRepo.Update(ctx, sub); err != nil {
		return err
	}

	s.Logger.Infow("ended cancelled subscription after billing",
		"subscription_id", sub.ID,
		"customer_id", sub.CustomerID)
	return nil
}

func (s *documentLifecycleService) FinalizeDocument(ctx context.Context, prov *provider.Provider, doc *document.Document) error {
	if prov.DefaultDocumentStatus != types.DocumentStatusIssued {
		return nil
	}
	if doc.DocumentStatus == types.DocumentStatusIssued {
		return nil
	}

	doc.Issue(s.Clock.Now())
	if err := s.DocumentRepo.Update(ctx, doc); err != nil {
		return err
	}

	s.Logger.Infow("issued billing document",
		"document_id", doc.ID,
		"document_number", doc.DocumentNumber,
		"document_type", doc.DocumentType,
		"provider_id", prov.ID)
	return nil
}
