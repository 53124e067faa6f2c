package provider

import (
	"github.com/hendrikschneider/silver/internal/types"
)

// Provider represents a billing entity that issues documents to customers.
// Its configuration decides which document kind subscriptions under it are
// billed onto and whether those documents are issued immediately.
type Provider struct {
	// ID is the unique identifier for the provider
	ID string `db:"id" json:"id"`

	// Name is the name of the provider
	Name string `db:"name" json:"name"`

	// Flow selects which document kind (invoice or proforma) subscriptions
	// under this provider are billed onto
	Flow types.DocumentFlow `db:"flow" json:"flow"`

	// DefaultDocumentStatus decides whether a freshly assembled document is
	// issued at the end of a generation run or left in draft
	DefaultDocumentStatus types.DocumentStatus `db:"default_document_status" json:"default_document_status"`

	types.BaseModel
}

// Validate checks the provider's static document configuration
func (p *Provider) Validate() error {
	if err := p.Flow.Validate(); err != nil {
		return err
	}
	return p.DefaultDocumentStatus.Validate()
}
