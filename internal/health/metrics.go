// Package health computes per-entity business metrics and a composite
// health score. Metric dispatch is a closed registry keyed by
// model.MetricKind; an unknown kind evaluates to zero instead of
// failing, so one misconfigured metric degrades one figure only.
package health

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

type formula func(txs []model.Transaction) decimal.Decimal

// formulas is the metric registry. Transactions are expected to be
// pre-filtered to a single business entity.
var formulas = map[model.MetricKind]formula{
	model.MetricRevenue:   sumOf(model.TypeCredit),
	model.MetricExpenses:  sumOf(model.TypeDebit),
	model.MetricNetProfit: netProfit,
	model.MetricProfitMargin: func(txs []model.Transaction) decimal.Decimal {
		revenue := sumOf(model.TypeCredit)(txs)
		if revenue.IsZero() {
			return decimal.Zero
		}
		return netProfit(txs).Div(revenue).Mul(decimal.NewFromInt(100))
	},
	model.MetricAvgTransaction: func(txs []model.Transaction) decimal.Decimal {
		if len(txs) == 0 {
			return decimal.Zero
		}
		total := decimal.Zero
		for _, tx := range txs {
			total = total.Add(tx.Amount)
		}
		return total.Div(decimal.NewFromInt(int64(len(txs))))
	},
	model.MetricTransactionCount: func(txs []model.Transaction) decimal.Decimal {
		return decimal.NewFromInt(int64(len(txs)))
	},
}

func sumOf(txType model.TransactionType) formula {
	return func(txs []model.Transaction) decimal.Decimal {
		total := decimal.Zero
		for _, tx := range txs {
			if tx.Type == txType {
				total = total.Add(tx.Amount)
			}
		}
		return total
	}
}

func netProfit(txs []model.Transaction) decimal.Decimal {
	return sumOf(model.TypeCredit)(txs).Sub(sumOf(model.TypeDebit)(txs))
}

// MetricValue evaluates one metric over an entity's transactions.
// Unknown kinds return zero.
func MetricValue(kind model.MetricKind, txs []model.Transaction) decimal.Decimal {
	f, ok := formulas[kind]
	if !ok {
		return decimal.Zero
	}
	return f(txs)
}
