package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// AdjustmentCategory tags synthesized balance-adjustment transactions.
const AdjustmentCategory = "Balance Adjustment"

// Adjustment is the outcome of a direct balance edit: the transaction
// the caller must persist (new, or an updated same-day row) and the
// balance that replaying the ledger will then reproduce.
type Adjustment struct {
	Transaction model.Transaction
	// Merged is true when an existing same-day adjustment row was
	// updated instead of a new one created.
	Merged bool
	Balance decimal.Decimal
}

// AdjustBalance handles a user editing an account's stated balance
// directly. The balance is never overwritten silently; instead a
// transaction dated today is synthesized whose signed amount makes
// replay reproduce the entered balance. If an adjustment row already
// exists for today, the new delta is netted into it. Adjustments from
// earlier days are left alone.
func AdjustBalance(account model.Account, txs []model.Transaction, target decimal.Decimal, today string) Adjustment {
	delta := target.Sub(Reconcile(account, txs))

	for _, tx := range txs {
		if tx.Adjustment && tx.AccountID == account.ID && tx.Date == today {
			signed := tx.Signed().Add(delta)
			tx.Type = model.TypeCredit
			tx.Amount = signed
			if signed.IsNegative() {
				tx.Type = model.TypeDebit
				tx.Amount = signed.Neg()
			}
			return Adjustment{Transaction: tx, Merged: true, Balance: target}
		}
	}

	txType := model.TypeCredit
	amount := delta
	if delta.IsNegative() {
		txType = model.TypeDebit
		amount = delta.Neg()
	}

	return Adjustment{
		Transaction: model.Transaction{
			ID:         uuid.NewString(),
			AccountID:  account.ID,
			Type:       txType,
			Amount:     amount,
			Currency:   account.Currency,
			Date:       today,
			Category:   AdjustmentCategory,
			Adjustment: true,
		},
		Balance: target,
	}
}
