package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/currency"
	"github.com/fintrack-dev/fintrack/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func usdRates() currency.RateTable {
	return currency.RateTable{
		Pivot: "USD",
		Rates: map[string]decimal.Decimal{
			"USD": dec("1"),
			"EUR": dec("0.5"),
		},
	}
}

func expenseTx(amount, date, category string) model.Transaction {
	return model.Transaction{
		ID: "tx-" + date + "-" + amount, AccountID: "acct-1",
		Type: model.TypeDebit, Amount: dec(amount), Currency: "USD",
		Date: date, Category: category,
	}
}

func foodBudget(limit string) model.BudgetCategory {
	return model.BudgetCategory{
		ID: "b-food", Category: "Food", Limit: dec(limit), Type: model.BudgetExpense,
	}
}

func TestComputeSpent_CurrentMonthOnly(t *testing.T) {
	budgets := []model.BudgetCategory{foodBudget("500")}
	txs := []model.Transaction{
		expenseTx("30", "2025-10-05", "Food"),
		expenseTx("45", "2025-10-20", "Food"),
		expenseTx("1000", "2025-09-28", "Food"), // prior month, excluded
	}

	got := ComputeSpent(budgets, txs, "USD", usdRates(), nil, "2025-10-15")

	require.Len(t, got, 1)
	assert.True(t, dec("75").Equal(got[0].Spent), "got %s", got[0].Spent)
}

func TestComputeSpent_ResetsStaleSpent(t *testing.T) {
	b := foodBudget("500")
	b.Spent = dec("9999") // stale persisted value must not leak

	got := ComputeSpent([]model.BudgetCategory{b}, nil, "USD", usdRates(), nil, "2025-10-15")
	assert.True(t, got[0].Spent.IsZero())

	// Input untouched.
	assert.True(t, dec("9999").Equal(b.Spent))
}

func TestComputeSpent_SignFilter(t *testing.T) {
	income := model.BudgetCategory{ID: "b-sal", Category: "Salary", Limit: dec("3000"), Type: model.BudgetIncome}
	salary := model.Transaction{
		ID: "tx-sal", AccountID: "acct-1", Type: model.TypeCredit,
		Amount: dec("2500"), Currency: "USD", Date: "2025-10-01", Category: "Salary",
	}
	refund := expenseTx("40", "2025-10-02", "Salary")

	got := ComputeSpent([]model.BudgetCategory{income}, []model.Transaction{salary, refund}, "USD", usdRates(), nil, "2025-10-15")
	assert.True(t, dec("2500").Equal(got[0].Spent), "income budget sums credits only, got %s", got[0].Spent)
}

func TestComputeSpent_Aliases(t *testing.T) {
	aliases := Aliases{"Food": {"Groceries", "Restaurants"}}
	budgets := []model.BudgetCategory{foodBudget("500")}
	txs := []model.Transaction{
		expenseTx("30", "2025-10-05", "Groceries"),
		expenseTx("20", "2025-10-06", "restaurants"), // case-insensitive
		expenseTx("15", "2025-10-07", "Travel"),      // no match
	}

	got := ComputeSpent(budgets, txs, "USD", usdRates(), aliases, "2025-10-15")
	assert.True(t, dec("50").Equal(got[0].Spent), "got %s", got[0].Spent)
}

func TestComputeSpent_ConvertsToBaseCurrency(t *testing.T) {
	budgets := []model.BudgetCategory{foodBudget("500")}
	eur := expenseTx("10", "2025-10-05", "Food")
	eur.Currency = "EUR"

	// 10 EUR at 0.5 per pivot -> 20 USD.
	got := ComputeSpent(budgets, []model.Transaction{eur}, "USD", usdRates(), nil, "2025-10-15")
	assert.True(t, dec("20").Equal(got[0].Spent), "got %s", got[0].Spent)
}

func TestPace(t *testing.T) {
	b := foodBudget("310")
	b.Spent = dec("160")

	// October 15th of 31 days: expected = 310 * 15/31 = 150.
	p := Pace(b, "2025-10-15")
	assert.True(t, dec("150").Equal(p.Expected), "got %s", p.Expected)
	assert.True(t, p.Ahead)
	assert.False(t, p.OverLimit)
}

func TestPace_OverLimitIndependentOfPace(t *testing.T) {
	b := foodBudget("100")
	b.Spent = dec("101")

	p := Pace(b, "2025-10-31")
	assert.True(t, p.OverLimit)
	assert.True(t, p.Ahead)
}

func TestPace_BehindPace(t *testing.T) {
	b := foodBudget("310")
	b.Spent = dec("100")

	p := Pace(b, "2025-10-15")
	assert.False(t, p.Ahead)
}
