package document

import (
	"time"

	ierr "github.com/hendrikschneider/silver/internal/errors"
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem represents a single subscription's charge on a billing document
type LineItem struct {
	ID             string          `db:"id" json:"id"`
	DocumentID     string          `db:"document_id" json:"document_id"`
	SubscriptionID string          `db:"subscription_id" json:"subscription_id"`
	PlanID         string          `db:"plan_id" json:"plan_id"`
	DisplayName    string          `db:"display_name" json:"display_name"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	Quantity       decimal.Decimal `db:"quantity" json:"quantity"`
	Currency       string          `db:"currency" json:"currency"`
	PeriodStart    *time.Time      `db:"period_start" json:"period_start,omitempty"`
	PeriodEnd      *time.Time      `db:"period_end" json:"period_end,omitempty"`
	Metadata       types.Metadata  `db:"metadata" json:"metadata,omitempty"`

	types.BaseModel
}

func (i *LineItem) Validate() error {
	if i.Amount.IsNegative() {
		return ierr.NewError("amount must be non negative").
			WithHint("Line item amount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if i.SubscriptionID == "" {
		return ierr.NewError("subscription_id is required").
			WithHint("Line items must reference the subscription they bill").
			Mark(ierr.ErrValidation)
	}
	if i.PeriodStart != nil && i.PeriodEnd != nil {
		if i.PeriodEnd.Before(*i.PeriodStart) {
			return ierr.NewError("period_end must be after period_start").
				WithHint("Line item period is inverted").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
