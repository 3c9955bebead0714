package model

import "github.com/shopspring/decimal"

// AccountType distinguishes assets from liabilities. The distinction
// affects sign interpretation at display time only; reconciliation math
// is identical for both.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
)

// Account is a balance-carrying account in the settlement currency.
type Account struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type AccountType `json:"type"`

	// Balance is the last persisted derived value. It is never a source
	// of truth: reconciliation recomputes it from InitialBalance plus
	// the full transaction history.
	Balance decimal.Decimal `json:"balance"`

	// InitialBalance is the reconciliation anchor.
	InitialBalance decimal.Decimal `json:"initial_balance"`

	Currency string `json:"currency"`
}

// Investment is a valued holding outside the transaction stream. It
// contributes to net worth but is never reconciled.
type Investment struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}
