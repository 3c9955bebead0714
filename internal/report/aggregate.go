package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/currency"
	"github.com/fintrack-dev/fintrack/internal/model"
)

// topCategoryCount caps the category breakdown.
const topCategoryCount = 5

// uncategorizedLabel groups transactions with a missing or placeholder
// category in the breakdown.
const uncategorizedLabel = "Uncategorized"

// Totals is the income/expense summary of one window in the report's
// base currency. Net and SavingsRate are derived in the same pass.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
	// SavingsRate is net/income; zero income yields 0, never NaN.
	SavingsRate float64 `json:"savings_rate"`
}

// CategoryShare is one row of the expense category breakdown.
type CategoryShare struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Share    float64         `json:"share"`
}

// aggregation is the result of the single pass over a window's
// transactions.
type aggregation struct {
	totals        Totals
	personal      Totals
	business      Totals
	categories    []CategoryShare
	uncategorized int
	count         int
}

// aggregate folds a window's transactions once, converting every amount
// into the base currency. Intermediate sums stay unrounded.
func aggregate(txs []model.Transaction, base string, rates currency.RateTable) aggregation {
	var agg aggregation
	byCategory := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		amount := currency.Convert(tx.Amount, tx.Currency, base, rates)

		part := &agg.personal
		if tx.IsBusiness() {
			part = &agg.business
		}

		switch tx.Type {
		case model.TypeCredit:
			agg.totals.Income = agg.totals.Income.Add(amount)
			part.Income = part.Income.Add(amount)
		case model.TypeDebit:
			agg.totals.Expense = agg.totals.Expense.Add(amount)
			part.Expense = part.Expense.Add(amount)
			label := tx.Category
			if isPlaceholder(label) {
				label = uncategorizedLabel
			}
			byCategory[label] = byCategory[label].Add(amount)
		}

		if isPlaceholder(tx.Category) {
			agg.uncategorized++
		}
		agg.count++
	}

	finishTotals(&agg.totals)
	finishTotals(&agg.personal)
	finishTotals(&agg.business)
	agg.categories = topCategories(byCategory, agg.totals.Expense)
	return agg
}

func finishTotals(t *Totals) {
	t.Net = t.Income.Sub(t.Expense)
	if t.Income.IsPositive() {
		t.SavingsRate = t.Net.Div(t.Income).InexactFloat64()
	}
}

func isPlaceholder(category string) bool {
	switch category {
	case "", "Other", uncategorizedLabel:
		return true
	}
	return false
}

// topCategories ranks expense categories by converted value share.
func topCategories(byCategory map[string]decimal.Decimal, totalExpense decimal.Decimal) []CategoryShare {
	shares := make([]CategoryShare, 0, len(byCategory))
	for category, amount := range byCategory {
		share := 0.0
		if totalExpense.IsPositive() {
			share = amount.Div(totalExpense).InexactFloat64()
		}
		shares = append(shares, CategoryShare{Category: category, Amount: amount, Share: share})
	}

	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Amount.GreaterThan(shares[j].Amount)
		}
		return shares[i].Category < shares[j].Category
	})

	if len(shares) > topCategoryCount {
		shares = shares[:topCategoryCount]
	}
	return shares
}

// percentDelta compares a value against the prior window. Both zero
// means no movement (0); appearing from a zero base is pinned to 100 so
// the division can never blow up.
func percentDelta(curr, prev decimal.Decimal) float64 {
	if prev.IsZero() {
		if curr.IsZero() {
			return 0
		}
		return 100
	}
	return curr.Sub(prev).Div(prev.Abs()).InexactFloat64() * 100
}
