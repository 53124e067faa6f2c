package testutil

import (
	"context"

	"github.com/hendrikschneider/silver/internal/domain/document"
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/samber/lo"
)

// InMemoryDocumentStore implements document.Repository
type InMemoryDocumentStore struct {
	*InMemoryStore[*document.Document]
}

// NewInMemoryDocumentStore creates a new in-memory document store
func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		InMemoryStore: NewInMemoryStore[*document.Document](),
	}
}

func copyDocument(doc *document.Document) *document.Document {
	if doc == nil {
		return nil
	}

	cloned := *doc
	if doc.SubscriptionID != nil {
		cloned.SubscriptionID = lo.ToPtr(*doc.SubscriptionID)
	}
	if doc.IssuedAt != nil {
		cloned.IssuedAt = lo.ToPtr(*doc.IssuedAt)
	}
	cloned.LineItems = lo.Map(doc.LineItems, func(item *document.LineItem, _ int) *document.LineItem {
		clonedItem := *item
		if item.PeriodStart != nil {
			clonedItem.PeriodStart = lo.ToPtr(*item.PeriodStart)
		}
		if item.PeriodEnd != nil {
			clonedItem.PeriodEnd = lo.ToPtr(*item.PeriodEnd)
		}
		return &clonedItem
	})
	return &cloned
}

func (s *InMemoryDocumentStore) Create(ctx context.Context, doc *document.Document) error {
	return s.InMemoryStore.Create(ctx, doc.ID, copyDocument(doc))
}

func (s *InMemoryDocumentStore) Get(ctx context.Context, id string) (*document.Document, error) {
	doc, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyDocument(doc), nil
}

func (s *InMemoryDocumentStore) Update(ctx context.Context, doc *document.Document) error {
	return s.InMemoryStore.Update(ctx, doc.ID, copyDocument(doc))
}

func documentFilterFn(ctx context.Context, doc *document.Document, filter interface{}) bool {
	f, ok := filter.(*types.DocumentFilter)
	if !ok {
		return true
	}
	if doc.TenantID != types.GetTenantID(ctx) {
		return false
	}
	if doc.Status != types.StatusPublished {
		return false
	}
	if f.CustomerID != "" && doc.CustomerID != f.CustomerID {
		return false
	}
	if f.ProviderID != "" && doc.ProviderID != f.ProviderID {
		return false
	}
	if len(f.DocumentStatus) > 0 && !lo.Contains(f.DocumentStatus, doc.DocumentStatus) {
		return false
	}
	if len(f.DocumentType) > 0 && !lo.Contains(f.DocumentType, doc.DocumentType) {
		return false
	}
	return true
}

func documentSortFn(i, j *document.Document) bool {
	if i.CreatedAt.Equal(j.CreatedAt) {
		return i.ID < j.ID
	}
	return i.CreatedAt.Before(j.CreatedAt)
}

func (s *InMemoryDocumentStore) List(ctx context.Context, filter *types.DocumentFilter) ([]*document.Document, error) {
	items, err := s.InMemoryStore.List(ctx, filter, documentFilterFn, documentSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(doc *document.Document, _ int) *document.Document {
		return copyDocument(doc)
	}), nil
}

func (s *InMemoryDocumentStore) Count(ctx context.Context, filter *types.DocumentFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, documentFilterFn)
}
