package types

import (
	ierr "github.com/hendrikschneider/silver/internal/errors"
	"github.com/samber/lo"
)

// DocumentType is the kind of billing document a charge lands on
type DocumentType string

const (
	DocumentTypeInvoice  DocumentType = "invoice"
	DocumentTypeProforma DocumentType = "proforma"
)

func (t DocumentType) String() string {
	return string(t)
}

func (t DocumentType) Validate() error {
	allowed := []DocumentType{
		DocumentTypeInvoice,
		DocumentTypeProforma,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid document type").
			WithHint("Please provide a valid document type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DocumentFlow is a provider level configuration selecting which document kind
// subscriptions under that provider are billed onto
type DocumentFlow string

const (
	DocumentFlowInvoice  DocumentFlow = "invoice"
	DocumentFlowProforma DocumentFlow = "proforma"
)

func (f DocumentFlow) String() string {
	return string(f)
}

func (f DocumentFlow) Validate() error {
	allowed := []DocumentFlow{
		DocumentFlowInvoice,
		DocumentFlowProforma,
	}
	if !lo.Contains(allowed, f) {
		return ierr.NewError("invalid document flow").
			WithHint("Please provide a valid document flow").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DocumentStatus represents the current state of a billing document in its lifecycle.
// The draft to issued transition is one way; an issued document is never un-issued.
type DocumentStatus string

const (
	DocumentStatusDraft  DocumentStatus = "draft"
	DocumentStatusIssued DocumentStatus = "issued"
)

func (s DocumentStatus) String() string {
	return string(s)
}

func (s DocumentStatus) Validate() error {
	allowed := []DocumentStatus{
		DocumentStatusDraft,
		DocumentStatusIssued,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid document status").
			WithHint("Please provide a valid document status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DocumentFilter represents filters for document queries
type DocumentFilter struct {
	*QueryFilter

	// CustomerID filters documents by owning customer
	CustomerID string `json:"customer_id,omitempty" form:"customer_id"`

	// ProviderID filters documents by owning provider
	ProviderID string `json:"provider_id,omitempty" form:"provider_id"`

	// DocumentStatus filters by document lifecycle status
	DocumentStatus []DocumentStatus `json:"document_status,omitempty" form:"document_status"`

	// DocumentType filters by document kind
	DocumentType []DocumentType `json:"document_type,omitempty" form:"document_type"`
}

func NewDocumentFilter() *DocumentFilter {
	return &DocumentFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitDocumentFilter() *DocumentFilter {
	return &DocumentFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *DocumentFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	for _, status := range f.DocumentStatus {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	for _, documentType := range f.DocumentType {
		if err := documentType.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *DocumentFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *DocumentFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *DocumentFilter) GetStatus() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetStatus()
	}
	return f.QueryFilter.GetStatus()
}

func (f *DocumentFilter) GetSort() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetSort()
	}
	return f.QueryFilter.GetSort()
}

func (f *DocumentFilter) GetOrder() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOrder()
	}
	return f.QueryFilter.GetOrder()
}

func (f *DocumentFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
