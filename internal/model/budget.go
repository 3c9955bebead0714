package model

import "github.com/shopspring/decimal"

// BudgetType selects which transaction sign a budget tracks.
type BudgetType string

const (
	BudgetExpense BudgetType = "expense"
	BudgetIncome  BudgetType = "income"
)

// BudgetCategory is a monthly spending or income envelope. Spent is
// always derived; the aggregator rebuilds it from zero on every pass so
// a stale persisted value can never leak back into storage.
type BudgetCategory struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Type     BudgetType      `json:"type"`
	Spent    decimal.Decimal `json:"spent"`
}
