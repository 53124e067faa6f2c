package document

import (
	ierr "github.com/hendrikschneider/silver/internal/errors"
	"github.com/hendrikschneider/silver/internal/types"
)

// Flow binds a provider's flow selection to the concrete document kind that
// gets created and the number prefix stamped on it. The binding is a closed
// lookup table so a misconfigured provider fails at resolution time, before
// any document is created.
type Flow struct {
	Kind         types.DocumentType
	NumberPrefix string
}

var flows = map[types.DocumentFlow]Flow{
	types.DocumentFlowInvoice: {
		Kind:         types.DocumentTypeInvoice,
		NumberPrefix: types.SHORT_ID_PREFIX_INVOICE,
	},
	types.DocumentFlowProforma: {
		Kind:         types.DocumentTypeProforma,
		NumberPrefix: types.SHORT_ID_PREFIX_PROFORMA,
	},
}

// FlowFor resolves a provider's configured flow to the document kind it
// produces. An unknown flow is a provider configuration error.
func FlowFor(flow types.DocumentFlow) (Flow, error) {
	f, ok := flows[flow]
	if !ok {
		return Flow{}, ierr.NewError("unknown document flow").
			WithHintf("Flow %q does not map to a document kind", flow).
			WithReportableDetails(map[string]any{
				"flow": flow,
			}).
			Mark(ierr.ErrValidation)
	}
	return f, nil
}
