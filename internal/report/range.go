package report

import (
	"time"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Period selects how a report window is resolved.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodYTD     Period = "ytd"
	PeriodCustom  Period = "custom"
)

// Scope filters transactions by business tagging.
type Scope string

const (
	ScopePersonal Scope = "personal"
	ScopeBusiness Scope = "business"
	ScopeAll      Scope = "all"
)

// resolveDateRange maps a spec onto an inclusive [start, end] pair of
// ISO date strings anchored at asOf. A stray custom range on a
// non-custom period is ignored; an unusable custom range degenerates to
// the zero-length today range rather than failing the whole report.
func resolveDateRange(spec Spec, asOf string) (start, end string) {
	now := parseOrToday(asOf)

	switch spec.Period {
	case PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return iso(first), iso(first.AddDate(0, 1, -1))
	case PeriodQuarter:
		startMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		first := time.Date(now.Year(), startMonth, 1, 0, 0, 0, 0, time.UTC)
		return iso(first), iso(first.AddDate(0, 3, -1))
	case PeriodYear:
		return iso(time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)),
			iso(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC))
	case PeriodYTD:
		return iso(time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)), iso(now)
	case PeriodCustom:
		from, errFrom := time.Parse(model.DateFormat, spec.CustomStart)
		to, errTo := time.Parse(model.DateFormat, spec.CustomEnd)
		if errFrom != nil || errTo != nil || to.Before(from) {
			return iso(now), iso(now)
		}
		return spec.CustomStart, spec.CustomEnd
	default:
		return iso(now), iso(now)
	}
}

// previousRange returns the immediately preceding window of identical
// duration: prevEnd is the day before start, prevStart keeps the
// length. Unparseable input degenerates to the zero-length today range.
func previousRange(start, end, asOf string) (prevStart, prevEnd string) {
	from, errFrom := time.Parse(model.DateFormat, start)
	to, errTo := time.Parse(model.DateFormat, end)
	if errFrom != nil || errTo != nil || to.Before(from) {
		today := parseOrToday(asOf)
		return iso(today), iso(today)
	}

	days := int(to.Sub(from).Hours()/24) + 1 // inclusive length
	pe := from.AddDate(0, 0, -1)
	ps := pe.AddDate(0, 0, -(days - 1))
	return iso(ps), iso(pe)
}

func parseOrToday(asOf string) time.Time {
	t, err := time.Parse(model.DateFormat, asOf)
	if err != nil {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return t
}

func iso(t time.Time) string {
	return t.Format(model.DateFormat)
}
