package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const asOf = "2025-10-15"

func TestResolveDateRange_Month(t *testing.T) {
	start, end := resolveDateRange(Spec{Period: PeriodMonth}, asOf)
	assert.Equal(t, "2025-10-01", start)
	assert.Equal(t, "2025-10-31", end)
}

func TestResolveDateRange_MonthIgnoresStrayCustomRange(t *testing.T) {
	spec := Spec{Period: PeriodMonth, CustomStart: "2020-01-01", CustomEnd: "2020-12-31"}
	start, end := resolveDateRange(spec, asOf)
	assert.Equal(t, "2025-10-01", start)
	assert.Equal(t, "2025-10-31", end)
}

func TestResolveDateRange_Quarter(t *testing.T) {
	start, end := resolveDateRange(Spec{Period: PeriodQuarter}, asOf)
	assert.Equal(t, "2025-10-01", start)
	assert.Equal(t, "2025-12-31", end)

	start, end = resolveDateRange(Spec{Period: PeriodQuarter}, "2025-02-10")
	assert.Equal(t, "2025-01-01", start)
	assert.Equal(t, "2025-03-31", end)
}

func TestResolveDateRange_Year(t *testing.T) {
	start, end := resolveDateRange(Spec{Period: PeriodYear}, asOf)
	assert.Equal(t, "2025-01-01", start)
	assert.Equal(t, "2025-12-31", end)
}

func TestResolveDateRange_YTD(t *testing.T) {
	start, end := resolveDateRange(Spec{Period: PeriodYTD}, asOf)
	assert.Equal(t, "2025-01-01", start)
	assert.Equal(t, asOf, end)
}

func TestResolveDateRange_CustomPassthrough(t *testing.T) {
	spec := Spec{Period: PeriodCustom, CustomStart: "2025-03-05", CustomEnd: "2025-04-10"}
	start, end := resolveDateRange(spec, asOf)
	assert.Equal(t, "2025-03-05", start)
	assert.Equal(t, "2025-04-10", end)
}

func TestResolveDateRange_MalformedCustomDegeneratesToToday(t *testing.T) {
	spec := Spec{Period: PeriodCustom, CustomStart: "not-a-date", CustomEnd: "2025-04-10"}
	start, end := resolveDateRange(spec, asOf)
	assert.Equal(t, asOf, start)
	assert.Equal(t, asOf, end)

	// Reversed bounds are just as unusable.
	spec = Spec{Period: PeriodCustom, CustomStart: "2025-04-10", CustomEnd: "2025-03-05"}
	start, end = resolveDateRange(spec, asOf)
	assert.Equal(t, asOf, start)
	assert.Equal(t, asOf, end)
}

func TestPreviousRange_SameLengthAndAdjacent(t *testing.T) {
	prevStart, prevEnd := previousRange("2025-10-01", "2025-10-31", asOf)
	assert.Equal(t, "2025-09-30", prevEnd, "previous window ends the day before the current one starts")
	assert.Equal(t, "2025-08-31", prevStart, "previous window keeps the 31-day length")
}

func TestPreviousRange_SingleDay(t *testing.T) {
	prevStart, prevEnd := previousRange("2025-10-15", "2025-10-15", asOf)
	assert.Equal(t, "2025-10-14", prevStart)
	assert.Equal(t, "2025-10-14", prevEnd)
}

func TestPreviousRange_MalformedDegeneratesToToday(t *testing.T) {
	prevStart, prevEnd := previousRange("garbage", "2025-10-31", asOf)
	assert.Equal(t, asOf, prevStart)
	assert.Equal(t, asOf, prevEnd)
}
