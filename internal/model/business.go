package model

import "github.com/shopspring/decimal"

// MetricKind is the closed set of business metrics the KPI engine knows
// how to compute. Anything outside this set evaluates to zero.
type MetricKind string

const (
	MetricRevenue          MetricKind = "revenue"
	MetricExpenses         MetricKind = "expenses"
	MetricNetProfit        MetricKind = "net_profit"
	MetricProfitMargin     MetricKind = "profit_margin"
	MetricAvgTransaction   MetricKind = "avg_transaction"
	MetricTransactionCount MetricKind = "transaction_count"
)

// BusinessMetric is one configured KPI target on a business entity.
type BusinessMetric struct {
	Kind   MetricKind      `json:"kind"`
	Target decimal.Decimal `json:"target"`
	Weight float64         `json:"weight"`

	// HigherIsBetter controls ratio direction: false inverts the
	// actual/target ratio so that staying under target scores well.
	HigherIsBetter bool `json:"higher_is_better"`
}

// BusinessEntity groups transactions (via Transaction.BusinessID) and
// carries the configured metrics for health scoring.
type BusinessEntity struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Metrics []BusinessMetric `json:"metrics,omitempty"`
}
