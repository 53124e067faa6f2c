package customer

import (
	"context"

	"github.com/hendrikschneider/silver/internal/types"
)

// Repository defines the interface for customer persistence operations
type Repository interface {
	// Create creates a new customer
	Create(ctx context.Context, customer *Customer) error

	// Get retrieves a customer by ID
	Get(ctx context.Context, id string) (*Customer, error)

	// Update updates an existing customer
	Update(ctx context.Context, customer *Customer) error

	// List retrieves customers based on filter criteria
	List(ctx context.Context, filter *types.CustomerFilter) ([]*Customer, error)

	// Count returns the total count of customers based on filter criteria
	Count(ctx context.Context, filter *types.CustomerFilter) (int, error)
}
