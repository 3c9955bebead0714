package currency

import (
	"strings"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Options controls money formatting.
type Options struct {
	// Privacy replaces the value with a fixed-length token that leaks
	// neither magnitude nor sign.
	Privacy bool
	// Compact abbreviates large values (120K, 1.2M) above a fixed
	// magnitude threshold.
	Compact bool
	// Locale selects digit-group and decimal separators ("en" default).
	Locale string
}

// privacyToken is constant-length on purpose: the redaction must not
// leak value length or sign.
const privacyToken = "••••••"

// compactThreshold is the absolute magnitude at which compact notation
// kicks in.
var compactThreshold = decimal.NewFromInt(100_000)

// pseudoFractions overrides fractional digits for non-ISO codes the
// rate table may carry.
var pseudoFractions = map[string]int{
	"BTC": 8,
	"ETH": 6,
	"SAT": 0,
}

type separators struct {
	group   string
	decimal string
}

var localeSeparators = map[string]separators{
	"en": {group: ",", decimal: "."},
	"de": {group: ".", decimal: ","},
	"fr": {group: " ", decimal: ","},
	"it": {group: ".", decimal: ","},
	"es": {group: ".", decimal: ","},
}

// Format renders a monetary value for display. This is the only place
// rounding happens; callers hand in exact intermediate values.
func Format(value decimal.Decimal, code string, opts Options) string {
	if opts.Privacy {
		return privacyToken
	}

	sep, ok := localeSeparators[opts.Locale]
	if !ok {
		sep = localeSeparators["en"]
	}

	sign := ""
	abs := value
	if value.IsNegative() {
		sign = "-"
		abs = value.Neg()
	}

	if opts.Compact && abs.GreaterThanOrEqual(compactThreshold) {
		return sign + symbol(code) + compact(abs, sep)
	}

	digits := FractionDigits(code)
	return sign + symbol(code) + grouped(abs.Round(int32(digits)), digits, sep)
}

// symbol returns the display prefix for a currency code: the ISO
// grapheme when go-money knows it, otherwise the raw code.
func symbol(code string) string {
	if c := money.GetCurrency(code); c != nil {
		return c.Grapheme
	}
	return code + " "
}

// compact renders an abbreviated magnitude with one decimal place,
// trimming a trailing ".0".
func compact(abs decimal.Decimal, sep separators) string {
	units := []struct {
		limit  decimal.Decimal
		suffix string
	}{
		{decimal.NewFromInt(1_000_000_000), "B"},
		{decimal.NewFromInt(1_000_000), "M"},
		{decimal.NewFromInt(1_000), "K"},
	}
	for _, u := range units {
		if abs.GreaterThanOrEqual(u.limit) {
			scaled := abs.Div(u.limit).Round(1)
			s := scaled.String()
			s = strings.TrimSuffix(s, ".0")
			s = strings.Replace(s, ".", sep.decimal, 1)
			return s + u.suffix
		}
	}
	return grouped(abs.Round(0), 0, sep)
}

// grouped renders a non-negative value with digit grouping and exactly
// the given number of fractional digits.
func grouped(abs decimal.Decimal, digits int, sep separators) string {
	fixed := abs.StringFixed(int32(digits))

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(sep.group)
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteString(sep.decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}
