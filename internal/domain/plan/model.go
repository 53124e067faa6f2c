package plan

import (
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/shopspring/decimal"
)

// Plan represents a pricing plan offered by a provider
type Plan struct {
	// ID is the unique identifier for the plan
	ID string `db:"id" json:"id"`

	// Name is the name of the plan
	Name string `db:"name" json:"name"`

	// ProviderID binds the plan, and every subscription on it, to the
	// provider whose documents its charges land on
	ProviderID string `db:"provider_id" json:"provider_id"`

	// Currency is the currency of the plan in lowercase 3 digit ISO codes
	Currency string `db:"currency" json:"currency"`

	// Amount is the flat recurring charge per billing cycle
	Amount decimal.Decimal `db:"amount" json:"amount"`

	types.BaseModel
}
