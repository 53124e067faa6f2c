package customer

import (
	"github.com/hendrikschneider/silver/internal/types"
)

// Customer represents a customer in the system
type Customer struct {
	// ID is the unique identifier for the customer
	ID string `db:"id" json:"id"`

	// ExternalID is the external identifier for the customer
	ExternalID string `db:"external_id" json:"external_id"`

	// Name is the name of the customer
	Name string `db:"name" json:"name"`

	// Email is the email of the customer
	Email string `db:"email" json:"email"`

	// ConsolidatedBilling merges all of the customer's subscriptions under the
	// same provider onto one billing document per cycle instead of one
	// document per subscription
	ConsolidatedBilling bool `db:"consolidated_billing" json:"consolidated_billing"`

	// PaymentDueDays is the offset in calendar days between the billing date
	// and the due date of the customer's billing documents
	PaymentDueDays int `db:"payment_due_days" json:"payment_due_days"`

	// Metadata
	Metadata map[string]string `db:"metadata" json:"metadata"`

	types.BaseModel
}
