// Package report resolves a requested time window, aggregates the
// transaction log over it, compares against the immediately preceding
// window, and assembles a ReportSnapshot. Everything is a pure function
// of the caller-supplied snapshot; nothing here reads ambient state.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/currency"
	"github.com/fintrack-dev/fintrack/internal/model"
)

// Spec is an ephemeral report request. It is never persisted.
type Spec struct {
	Period       Period `json:"period"`
	Scope        Scope  `json:"scope"`
	CustomStart  string `json:"custom_start,omitempty"`
	CustomEnd    string `json:"custom_end,omitempty"`
	BaseCurrency string `json:"base_currency"`
}

// Data is the full input snapshot the persistence collaborator hands
// over. The engine only reads it.
type Data struct {
	Transactions []model.Transaction
	Accounts     []model.Account
	Businesses   []model.BusinessEntity
	Investments  []model.Investment
}

// Deltas holds percent movement versus the previous window.
type Deltas struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// NetWorth is the point-in-time asset valuation. It always uses current
// live balances, even when the report window lies in the past, which is
// why it carries its own AsOf label instead of the window's end date.
type NetWorth struct {
	Total    decimal.Decimal `json:"total"`
	Liquid   decimal.Decimal `json:"liquid"`
	Invested decimal.Decimal `json:"invested"`
	AsOf     string          `json:"as_of"`
}

// BusinessSummary is the per-entity extension computed when the scope
// includes business transactions.
type BusinessSummary struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Revenue   decimal.Decimal `json:"revenue"`
	Expense   decimal.Decimal `json:"expense"`
	NetProfit decimal.Decimal `json:"net_profit"`
	// Margin is net profit as a percentage of revenue, 0 when revenue
	// is 0.
	Margin float64 `json:"margin"`
}

// Quality describes how complete the inputs behind a snapshot were.
type Quality struct {
	// UncategorizedPct is the percentage of in-window transactions
	// carrying a missing or placeholder category.
	UncategorizedPct float64 `json:"uncategorized_pct"`
	// Excluded counts transactions dropped by the window and scope
	// filters.
	Excluded int `json:"excluded"`
}

// Snapshot is the computed report: a pure data structure for a
// presentation layer or exporter to consume. It is never persisted.
type Snapshot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	PrevStart string `json:"prev_start"`
	PrevEnd   string `json:"prev_end"`
	Scope     Scope  `json:"scope"`
	Currency  string `json:"currency"`

	Current  Totals `json:"current"`
	Previous Totals `json:"previous"`
	Deltas   Deltas `json:"deltas"`

	Personal Totals `json:"personal"`
	Business Totals `json:"business"`

	TopCategories []CategoryShare   `json:"top_categories"`
	NetWorth      NetWorth          `json:"net_worth"`
	Businesses    []BusinessSummary `json:"businesses,omitempty"`
	Quality       Quality           `json:"quality"`
}

// Generate computes a full report snapshot as of a given day.
func Generate(spec Spec, data Data, rates currency.RateTable, asOf string) Snapshot {
	start, end := resolveDateRange(spec, asOf)
	prevStart, prevEnd := previousRange(start, end, asOf)

	current := filterTransactions(data.Transactions, spec.Scope, start, end)
	previous := filterTransactions(data.Transactions, spec.Scope, prevStart, prevEnd)

	base := spec.BaseCurrency
	if base == "" {
		base = rates.Pivot
	}

	curAgg := aggregate(current, base, rates)
	prevAgg := aggregate(previous, base, rates)

	snap := Snapshot{
		Start:     start,
		End:       end,
		PrevStart: prevStart,
		PrevEnd:   prevEnd,
		Scope:     spec.Scope,
		Currency:  base,

		Current:  curAgg.totals,
		Previous: prevAgg.totals,
		Deltas: Deltas{
			Income:  percentDelta(curAgg.totals.Income, prevAgg.totals.Income),
			Expense: percentDelta(curAgg.totals.Expense, prevAgg.totals.Expense),
			Net:     percentDelta(curAgg.totals.Net, prevAgg.totals.Net),
		},

		Personal:      curAgg.personal,
		Business:      curAgg.business,
		TopCategories: curAgg.categories,
		NetWorth:      netWorth(data, base, rates, asOf),
		Quality:       quality(curAgg, len(data.Transactions)),
	}

	if spec.Scope != ScopePersonal {
		snap.Businesses = businessSummaries(data.Businesses, current, base, rates)
	}
	return snap
}

// filterTransactions applies the inclusive date window and the scope
// filter. Date strings are ISO, so plain string comparison is exact.
func filterTransactions(txs []model.Transaction, scope Scope, start, end string) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if tx.Date < start || tx.Date > end {
			continue
		}
		switch scope {
		case ScopePersonal:
			if tx.IsBusiness() {
				continue
			}
		case ScopeBusiness:
			if !tx.IsBusiness() {
				continue
			}
		}
		out = append(out, tx)
	}
	return out
}

// netWorth values accounts and investments at their current live
// figures, split into liquid and invested.
func netWorth(data Data, base string, rates currency.RateTable, asOf string) NetWorth {
	nw := NetWorth{AsOf: asOf}
	for _, a := range data.Accounts {
		nw.Liquid = nw.Liquid.Add(currency.Convert(a.Balance, a.Currency, base, rates))
	}
	for _, inv := range data.Investments {
		nw.Invested = nw.Invested.Add(currency.Convert(inv.Value, inv.Currency, base, rates))
	}
	nw.Total = nw.Liquid.Add(nw.Invested)
	return nw
}

// businessSummaries computes revenue, expense, net profit, and margin
// per linked entity over the already-filtered window.
func businessSummaries(entities []model.BusinessEntity, window []model.Transaction, base string, rates currency.RateTable) []BusinessSummary {
	var out []BusinessSummary
	for _, e := range entities {
		var entityTxs []model.Transaction
		for _, tx := range window {
			if tx.BusinessID == e.ID {
				entityTxs = append(entityTxs, tx)
			}
		}
		agg := aggregate(entityTxs, base, rates)

		s := BusinessSummary{
			ID:        e.ID,
			Name:      e.Name,
			Revenue:   agg.totals.Income,
			Expense:   agg.totals.Expense,
			NetProfit: agg.totals.Net,
		}
		if s.Revenue.IsPositive() {
			s.Margin = s.NetProfit.Div(s.Revenue).InexactFloat64() * 100
		}
		out = append(out, s)
	}
	return out
}

func quality(agg aggregation, total int) Quality {
	q := Quality{Excluded: total - agg.count}
	if agg.count > 0 {
		q.UncategorizedPct = float64(agg.uncategorized) / float64(agg.count) * 100
	}
	return q
}
