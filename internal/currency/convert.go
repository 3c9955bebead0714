// Package currency provides rate-table currency conversion and money
// formatting. All conversion is routed through a single pivot currency;
// the rate table maps a currency code to units per one pivot unit.
package currency

import (
	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// RateTable maps currency codes to units per one pivot unit. The pivot
// itself should appear with rate 1; a missing code is treated as rate 1
// as well — a deliberate leniency so one unknown code degrades a single
// figure instead of taking down a whole report.
type RateTable struct {
	Pivot string
	Rates map[string]decimal.Decimal
}

// Rate returns the units-per-pivot rate for a code, defaulting to 1 for
// unknown codes.
func (rt RateTable) Rate(code string) decimal.Decimal {
	if r, ok := rt.Rates[code]; ok && !r.IsZero() {
		return r
	}
	return decimal.NewFromInt(1)
}

// Convert converts an amount between two currencies through the pivot.
// Same-currency conversion returns the amount unchanged with no lookup
// and no rounding. Intermediate values are kept exact; rounding belongs
// to the formatting boundary.
func Convert(amount decimal.Decimal, from, to string, rates RateTable) decimal.Decimal {
	if from == to {
		return amount
	}
	pivotValue := amount.Div(rates.Rate(from))
	return pivotValue.Mul(rates.Rate(to))
}

// FractionDigits returns the number of fractional digits for a currency
// code: the pseudo-currency override when one exists, the ISO fraction
// when go-money knows the code, and 2 otherwise.
func FractionDigits(code string) int {
	if f, ok := pseudoFractions[code]; ok {
		return f
	}
	if c := money.GetCurrency(code); c != nil {
		return c.Fraction
	}
	return 2
}
