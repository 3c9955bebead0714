// Package ledger derives authoritative account balances from the raw
// transaction log. Reconciliation is a pure fold over the account's
// transaction history: idempotent, order-independent, and the only
// legitimate mechanism for correcting balance drift.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/currency"
	"github.com/fintrack-dev/fintrack/internal/model"
)

// Reconcile recomputes an account's balance from its initial balance
// plus every transaction that references it. An account with zero
// transactions reconciles to its initial balance. Only the final result
// is rounded, to the account currency's fraction digits.
func Reconcile(account model.Account, txs []model.Transaction) decimal.Decimal {
	balance := account.InitialBalance
	for _, tx := range txs {
		if tx.AccountID != account.ID {
			continue
		}
		balance = balance.Add(tx.Signed())
	}
	return balance.Round(int32(currency.FractionDigits(account.Currency)))
}

// ReconcileAll reconciles every account against the full transaction
// set and returns corrected copies; the inputs are left untouched.
// Filtering is transaction-authoritative, so an account that lost a
// reassigned transaction loses its effect with no delta bookkeeping.
func ReconcileAll(accounts []model.Account, txs []model.Transaction) []model.Account {
	out := make([]model.Account, len(accounts))
	for i, a := range accounts {
		a.Balance = Reconcile(a, txs)
		out[i] = a
	}
	return out
}

// Drift returns stored balance minus reconciled balance, the amount a
// "reconcile" action would correct.
func Drift(account model.Account, txs []model.Transaction) decimal.Decimal {
	return account.Balance.Sub(Reconcile(account, txs))
}
