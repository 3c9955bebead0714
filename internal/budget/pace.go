package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Pacing marks how consumption compares to linear use of the limit
// across the month, independent of whether the hard limit is breached.
type Pacing struct {
	// Expected is limit x dayOfMonth/daysInMonth, the spend-to-date a
	// perfectly linear month would show.
	Expected decimal.Decimal
	// Ahead is true when actual consumption exceeds Expected.
	Ahead bool
	// OverLimit is true when the hard limit itself is breached.
	OverLimit bool
}

// Pace computes the pacing marker for an already-enriched budget as of
// a given day.
func Pace(b model.BudgetCategory, asOf string) Pacing {
	t, err := time.Parse(model.DateFormat, asOf)
	if err != nil {
		t = time.Now()
	}
	day := decimal.NewFromInt(int64(t.Day()))
	days := decimal.NewFromInt(int64(daysInMonth(t)))

	expected := b.Limit.Mul(day).Div(days)
	return Pacing{
		Expected:  expected,
		Ahead:     b.Spent.GreaterThan(expected),
		OverLimit: b.Limit.IsPositive() && b.Spent.GreaterThan(b.Limit),
	}
}

func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
