package subscription

import (
	"context"

	"github.com/hendrikschneider/silver/internal/types"
)

// Repository defines the interface for subscription persistence operations
type Repository interface {
	// Create creates a new subscription
	Create(ctx context.Context, subscription *Subscription) error

	// Get retrieves a subscription by ID
	Get(ctx context.Context, id string) (*Subscription, error)

	// Update updates an existing subscription
	Update(ctx context.Context, subscription *Subscription) error

	// List retrieves subscriptions based on filter criteria
	List(ctx context.Context, filter *types.SubscriptionFilter) ([]*Subscription, error)

	// Count returns the total count of subscriptions based on filter criteria
	Count(ctx context.Context, filter *types.SubscriptionFilter) (int, error)
}
