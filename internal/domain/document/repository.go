package document

import (
	"context"

	"github.com/hendrikschneider/silver/internal/types"
)

// Repository defines the interface for document persistence operations
type Repository interface {
	// Create creates a new document
	Create(ctx context.Context, document *Document) error

	// Get retrieves a document by ID
	Get(ctx context.Context, id string) (*Document, error)

	// Update updates an existing document
	Update(ctx context.Context, document *Document) error

	// List retrieves documents based on filter criteria
	List(ctx context.Context, filter *types.DocumentFilter) ([]*Document, error)

	// Count returns the total count of documents based on filter criteria
	Count(ctx context.Context, filter *types.DocumentFilter) (int, error)
}
