package model

import (
	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used on all model boundaries.
// ISO dates compare correctly as plain strings, which keeps date math
// out of the hot aggregation paths.
const DateFormat = "2006-01-02"

// TransactionType gives a transaction its signed effect on a balance.
type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// Transaction is one row of the transaction log. The engine treats it as
// immutable: derived values are always returned, never written back.
type Transaction struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Type      TransactionType `json:"type"`

	// Amount is always non-negative and always in the settlement
	// currency of the account; Type carries the sign.
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`

	// Original-currency fields are display-only and never enter
	// reconciliation or aggregation math.
	ForeignAmount   decimal.Decimal `json:"foreign_amount,omitempty"`
	ForeignCurrency string          `json:"foreign_currency,omitempty"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate,omitempty"`

	Date       string `json:"date"` // ISO YYYY-MM-DD
	Category   string `json:"category"`
	BusinessID string `json:"business_id,omitempty"`

	// Adjustment marks a synthesized balance-adjustment row so the
	// same-day merge policy can find it again.
	Adjustment bool `json:"adjustment,omitempty"`

	// TransferGroup links the two legs of a transfer.
	TransferGroup string `json:"transfer_group,omitempty"`

	RecurringFreq string `json:"recurring_freq,omitempty"`
	RecurringNext string `json:"recurring_next,omitempty"`
}

// Signed returns the transaction's effect on its account balance:
// positive for credits, negative for debits.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// IsBusiness reports whether the transaction is tagged to a business entity.
func (t Transaction) IsBusiness() bool {
	return t.BusinessID != ""
}
