package testutil

import (
	"context"

	"github.com/hendrikschneider/silver/internal/domain/provider"
	"github.com/samber/lo"
)

// InMemoryProviderStore implements provider.Repository
type InMemoryProviderStore struct {
	*InMemoryStore[*provider.Provider]
}

// NewInMemoryProviderStore creates a new in-memory provider store
func NewInMemoryProviderStore() *InMemoryProviderStore {
	return &InMemoryProviderStore{
		InMemoryStore: NewInMemoryStore[*provider.Provider](),
	}
}

func copyProvider(p *provider.Provider) *provider.Provider {
	if p == nil {
		return nil
	}

	cloned := *p
	return &cloned
}

func (s *InMemoryProviderStore) Create(ctx context.Context, p *provider.Provider) error {
	return s.InMemoryStore.Create(ctx, p.ID, copyProvider(p))
}

func (s *InMemoryProviderStore) Get(ctx context.Context, id string) (*provider.Provider, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyProvider(p), nil
}

func (s *InMemoryProviderStore) List(ctx context.Context) ([]*provider.Provider, error) {
	items, err := s.InMemoryStore.List(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(p *provider.Provider, _ int) *provider.Provider {
		return copyProvider(p)
	}), nil
}
