package document

import (
	"context"
	"testing"
	"time"

	ierr "github.com/hendrikschneider/silver/internal/errors"
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocument(t *testing.T, flow types.DocumentFlow) *Document {
	t.Helper()
	f, err := FlowFor(flow)
	require.NoError(t, err)
	return New(context.Background(), f, "prov_1", "cust_1", time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC))
}

func newTestLineItem(amount int64) *LineItem {
	return &LineItem{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOCUMENT_LINE_ITEM),
		SubscriptionID: "subs_1",
		PlanID:         "plan_1",
		DisplayName:    "Test Plan",
		Amount:         decimal.NewFromInt(amount),
		Quantity:       decimal.NewFromInt(1),
		Currency:       "usd",
	}
}

func TestFlowFor(t *testing.T) {
	invoice, err := FlowFor(types.DocumentFlowInvoice)
	require.NoError(t, err)
	assert.Equal(t, types.DocumentTypeInvoice, invoice.Kind)

	proforma, err := FlowFor(types.DocumentFlowProforma)
	require.NoError(t, err)
	assert.Equal(t, types.DocumentTypeProforma, proforma.Kind)

	_, err = FlowFor(types.DocumentFlow("receipt"))
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestNewDocumentStartsInDraft(t *testing.T) {
	doc := newTestDocument(t, types.DocumentFlowInvoice)

	assert.Equal(t, types.DocumentStatusDraft, doc.DocumentStatus)
	assert.Equal(t, types.DocumentTypeInvoice, doc.DocumentType)
	assert.True(t, doc.AmountDue.IsZero())
	assert.Nil(t, doc.IssuedAt)
	assert.NotEmpty(t, doc.DocumentNumber)
}

func TestAddLineItemAccumulatesTotal(t *testing.T) {
	doc := newTestDocument(t, types.DocumentFlowInvoice)

	require.NoError(t, doc.AddLineItem(newTestLineItem(10)))
	require.NoError(t, doc.AddLineItem(newTestLineItem(25)))

	assert.Len(t, doc.LineItems, 2)
	assert.True(t, doc.AmountDue.Equal(decimal.NewFromInt(35)))
	assert.Equal(t, "usd", doc.Currency)
	for _, item := range doc.LineItems {
		assert.Equal(t, doc.ID, item.DocumentID)
	}
}

func TestAddLineItemCurrencyMismatch(t *testing.T) {
	doc := newTestDocument(t, types.DocumentFlowInvoice)
	require.NoError(t, doc.AddLineItem(newTestLineItem(10)))

	item := newTestLineItem(5)
	item.Currency = "eur"
	err := doc.AddLineItem(item)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestAddLineItemToIssuedDocument(t *testing.T) {
	doc := newTestDocument(t, types.DocumentFlowInvoice)
	require.NoError(t, doc.AddLineItem(newTestLineItem(10)))
	doc.Issue(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))

	err := doc.AddLineItem(newTestLineItem(5))
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))
}

func TestIssueIsIdempotent(t *testing.T) {
	doc := newTestDocument(t, types.DocumentFlowProforma)
	first := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	doc.Issue(first)
	require.Equal(t, types.DocumentStatusIssued, doc.DocumentStatus)
	require.NotNil(t, doc.IssuedAt)
	assert.True(t, doc.IssuedAt.Equal(first))

	// A second issue call is a no-op, not an error
	doc.Issue(first.Add(48 * time.Hour))
	assert.Equal(t, types.DocumentStatusIssued, doc.DocumentStatus)
	assert.True(t, doc.IssuedAt.Equal(first))
}

func TestDocumentValidate(t *testing.T) {
	doc := newTestDocument(t, types.DocumentFlowInvoice)
	require.NoError(t, doc.AddLineItem(newTestLineItem(10)))
	require.NoError(t, doc.Validate())

	doc.AmountDue = decimal.NewFromInt(-1)
	require.Error(t, doc.Validate())
}
