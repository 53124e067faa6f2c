package provider

import (
	"context"
)

// Repository defines the interface for provider persistence operations.
// Provider configuration is read-only to the generation core.
type Repository interface {
	// Create creates a new provider
	Create(ctx context.Context, provider *Provider) error

	// Get retrieves a provider by ID
	Get(ctx context.Context, id string) (*Provider, error)

	// List retrieves all providers
	List(ctx context.Context) ([]*Provider, error)
}
