package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testRates() RateTable {
	return RateTable{
		Pivot: "USD",
		Rates: map[string]decimal.Decimal{
			"USD": dec("1"),
			"EUR": dec("0.9"),
			"GBP": dec("0.8"),
			"JPY": dec("150"),
		},
	}
}

func TestConvert_Identity(t *testing.T) {
	rates := testRates()
	for _, code := range []string{"USD", "EUR", "XXQ"} {
		got := Convert(dec("123.456789"), code, code, rates)
		assert.True(t, dec("123.456789").Equal(got), "identity for %s", code)
	}
}

func TestConvert_ThroughPivot(t *testing.T) {
	rates := testRates()

	// 90 EUR -> 100 USD (90 / 0.9 * 1).
	got := Convert(dec("90"), "EUR", "USD", rates)
	assert.True(t, dec("100").Equal(got), "got %s", got)

	// 100 USD -> 80 GBP.
	got = Convert(dec("100"), "USD", "GBP", rates)
	assert.True(t, dec("80").Equal(got), "got %s", got)
}

func TestConvert_UnknownCodeDefaultsToRateOne(t *testing.T) {
	rates := testRates()

	// Unknown source: treated as pivot-equivalent.
	got := Convert(dec("50"), "XXQ", "USD", rates)
	assert.True(t, dec("50").Equal(got), "got %s", got)

	// Unknown destination.
	got = Convert(dec("90"), "EUR", "XXQ", rates)
	assert.True(t, dec("100").Equal(got), "got %s", got)
}

func TestConvert_RoundTrip(t *testing.T) {
	rates := testRates()

	x := dec("1234.5678")
	back := Convert(Convert(x, "EUR", "JPY", rates), "JPY", "EUR", rates)

	diff := back.Sub(x).Abs()
	require.True(t, diff.LessThan(dec("0.0000001")), "round trip drifted by %s", diff)
}

func TestFractionDigits(t *testing.T) {
	assert.Equal(t, 2, FractionDigits("USD"))
	assert.Equal(t, 0, FractionDigits("JPY"))
	assert.Equal(t, 8, FractionDigits("BTC"))
	assert.Equal(t, 2, FractionDigits("XXQ"))
}
