package document

import (
	"context"
	"time"

	ierr "github.com/hendrikschneider/silver/internal/errors"
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/shopspring/decimal"
)

// Document represents a billing document (an invoice or a proforma) issued by
// one provider to one customer. It is created in draft, accumulates line items
// from one or more subscriptions within a single generation run, and is
// finalized (issued or left in draft) once all its charges are appended.
type Document struct {
	ID             string               `db:"id" json:"id"`
	DocumentNumber string               `db:"document_number" json:"document_number"`
	DocumentType   types.DocumentType   `db:"document_type" json:"document_type"`
	DocumentStatus types.DocumentStatus `db:"document_status" json:"document_status"`
	ProviderID     string               `db:"provider_id" json:"provider_id"`
	CustomerID     string               `db:"customer_id" json:"customer_id"`

	// SubscriptionID is set only for documents scoped to a single
	// subscription (non-consolidated customers and on demand runs)
	SubscriptionID *string `db:"subscription_id" json:"subscription_id,omitempty"`

	Currency  string          `db:"currency" json:"currency"`
	AmountDue decimal.Decimal `db:"amount_due" json:"amount_due"`
	DueDate   time.Time       `db:"due_date" json:"due_date"`
	IssuedAt  *time.Time      `db:"issued_at" json:"issued_at,omitempty"`

	LineItems []*LineItem `json:"line_items,omitempty"`

	types.BaseModel
}

// New creates a draft document of the kind the flow selects
func New(ctx context.Context, flow Flow, providerID, customerID string, dueDate time.Time) *Document {
	return &Document{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOCUMENT),
		DocumentNumber: types.GenerateShortIDWithPrefix(flow.NumberPrefix),
		DocumentType:   flow.Kind,
		DocumentStatus: types.DocumentStatusDraft,
		ProviderID:     providerID,
		CustomerID:     customerID,
		AmountDue:      decimal.Zero,
		DueDate:        dueDate,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

// AddLineItem appends a line item and rolls its amount into the document total.
// The first line item fixes the document currency.
func (d *Document) AddLineItem(item *LineItem) error {
	if d.DocumentStatus == types.DocumentStatusIssued {
		return ierr.NewError("document already issued").
			WithHint("Charges cannot be added to an issued document").
			WithReportableDetails(map[string]any{
				"document_id": d.ID,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	if d.Currency == "" {
		d.Currency = item.Currency
	} else if item.Currency != d.Currency {
		return ierr.NewError("line item currency mismatch").
			WithHintf("Line item currency %s does not match document currency %s", item.Currency, d.Currency).
			Mark(ierr.ErrValidation)
	}

	item.DocumentID = d.ID
	d.LineItems = append(d.LineItems, item)
	d.AmountDue = d.AmountDue.Add(item.Amount)
	return nil
}

// Issue transitions the document from draft to issued. Issuance is terminal
// and idempotent; issuing an already issued document is a no-op.
func (d *Document) Issue(at time.Time) {
	if d.DocumentStatus == types.DocumentStatusIssued {
		return
	}
	d.DocumentStatus = types.DocumentStatusIssued
	d.IssuedAt = &at
}

func (d *Document) Validate() error {
	if err := d.DocumentType.Validate(); err != nil {
		return err
	}
	if err := d.DocumentStatus.Validate(); err != nil {
		return err
	}
	if d.AmountDue.IsNegative() {
		return ierr.NewError("amount_due must be non negative").
			WithHint("Document amount due cannot be negative").
			Mark(ierr.ErrValidation)
	}
	for _, item := range d.LineItems {
		if item.Currency != d.Currency {
			return ierr.NewError("line item currency must match document currency").
				WithHint("All line items must share the document currency").
				Mark(ierr.ErrValidation)
		}
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}
