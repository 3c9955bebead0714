// Package budget computes period spend and income per budget category.
// Aggregation always rebuilds the derived Spent field from zero over
// the current calendar month, so stale persisted values can never leak
// back into storage.
package budget

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/currency"
	"github.com/fintrack-dev/fintrack/internal/model"
)

// Aliases maps a budget category name to the transaction categories it
// also matches. The budget's own name always matches; aliases extend it.
type Aliases map[string][]string

// Matches reports whether a transaction category belongs to a budget
// category, either directly or through an alias.
func (a Aliases) Matches(budgetCategory, txCategory string) bool {
	if strings.EqualFold(budgetCategory, txCategory) {
		return true
	}
	for _, alias := range a[budgetCategory] {
		if strings.EqualFold(alias, txCategory) {
			return true
		}
	}
	return false
}

// ComputeSpent returns copies of the budgets with Spent rebuilt from the
// transactions dated in asOf's calendar month. Expense budgets sum
// debits, income budgets sum credits; every amount is converted into
// baseCurrency before summing and the sum stays unrounded. Inputs are
// never mutated.
func ComputeSpent(budgets []model.BudgetCategory, txs []model.Transaction, baseCurrency string, rates currency.RateTable, aliases Aliases, asOf string) []model.BudgetCategory {
	start, end := monthWindow(asOf)

	out := make([]model.BudgetCategory, len(budgets))
	for i, b := range budgets {
		b.Spent = decimal.Zero
		for _, tx := range txs {
			if tx.Date < start || tx.Date > end {
				continue
			}
			if !matchesSign(b.Type, tx.Type) {
				continue
			}
			if !aliases.Matches(b.Category, tx.Category) {
				continue
			}
			b.Spent = b.Spent.Add(currency.Convert(tx.Amount, tx.Currency, baseCurrency, rates))
		}
		out[i] = b
	}
	return out
}

func matchesSign(budgetType model.BudgetType, txType model.TransactionType) bool {
	if budgetType == model.BudgetIncome {
		return txType == model.TypeCredit
	}
	return txType == model.TypeDebit
}

// monthWindow returns the inclusive [first, last] day of asOf's month as
// ISO strings. An unparseable asOf degrades to the current month.
func monthWindow(asOf string) (start, end string) {
	t, err := time.Parse(model.DateFormat, asOf)
	if err != nil {
		t = time.Now()
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(model.DateFormat), last.Format(model.DateFormat)
}
