package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func checking(initial string) model.Account {
	return model.Account{
		ID:             "acct-1",
		Name:           "Checking",
		Type:           model.AccountTypeAsset,
		InitialBalance: dec(initial),
		Currency:       "USD",
	}
}

func credit(account, amount, date string) model.Transaction {
	return model.Transaction{
		ID:        "tx-" + account + "-" + amount,
		AccountID: account,
		Type:      model.TypeCredit,
		Amount:    dec(amount),
		Currency:  "USD",
		Date:      date,
	}
}

func debit(account, amount, date string) model.Transaction {
	tx := credit(account, amount, date)
	tx.Type = model.TypeDebit
	return tx
}

func TestReconcile_CreditsAndDebits(t *testing.T) {
	account := checking("1000")
	txs := []model.Transaction{
		credit("acct-1", "200", "2025-10-01"),
		debit("acct-1", "50", "2025-10-02"),
	}

	got := Reconcile(account, txs)
	assert.True(t, dec("1150").Equal(got), "got %s", got)
}

func TestReconcile_ZeroTransactions(t *testing.T) {
	got := Reconcile(checking("1000"), nil)
	assert.True(t, dec("1000").Equal(got), "got %s", got)
}

func TestReconcile_Idempotent(t *testing.T) {
	account := checking("500")
	txs := []model.Transaction{
		credit("acct-1", "10.10", "2025-10-01"),
		debit("acct-1", "3.33", "2025-10-02"),
		credit("acct-1", "0.01", "2025-10-03"),
	}

	first := Reconcile(account, txs)
	second := Reconcile(account, txs)
	assert.True(t, first.Equal(second))
}

func TestReconcile_OrderIndependent(t *testing.T) {
	account := checking("500")
	txs := []model.Transaction{
		credit("acct-1", "10.10", "2025-10-01"),
		debit("acct-1", "3.33", "2025-10-02"),
		credit("acct-1", "0.01", "2025-10-03"),
	}
	reversed := []model.Transaction{txs[2], txs[1], txs[0]}

	assert.True(t, Reconcile(account, txs).Equal(Reconcile(account, reversed)))
}

func TestReconcile_IgnoresOtherAccounts(t *testing.T) {
	account := checking("1000")
	txs := []model.Transaction{
		credit("acct-1", "200", "2025-10-01"),
		credit("acct-2", "9999", "2025-10-01"),
	}

	got := Reconcile(account, txs)
	assert.True(t, dec("1200").Equal(got), "got %s", got)
}

func TestReconcile_LedgerInvariant(t *testing.T) {
	account := checking("123.45")
	txs := []model.Transaction{
		credit("acct-1", "7.89", "2025-01-01"),
		debit("acct-1", "2.34", "2025-02-01"),
		credit("acct-1", "100", "2025-03-15"),
	}

	sum := account.InitialBalance
	for _, tx := range txs {
		sum = sum.Add(tx.Signed())
	}
	assert.True(t, Reconcile(account, txs).Equal(sum))
}

func TestReconcileAll_Reassignment(t *testing.T) {
	a := checking("100")
	b := model.Account{ID: "acct-2", InitialBalance: dec("0"), Currency: "USD"}

	// A transaction edited from acct-1 to acct-2: the post-edit set is
	// authoritative, so acct-1 simply no longer sees it.
	txs := []model.Transaction{credit("acct-2", "40", "2025-10-01")}

	got := ReconcileAll([]model.Account{a, b}, txs)
	require.Len(t, got, 2)
	assert.True(t, dec("100").Equal(got[0].Balance), "got %s", got[0].Balance)
	assert.True(t, dec("40").Equal(got[1].Balance), "got %s", got[1].Balance)

	// Inputs untouched.
	assert.True(t, a.Balance.IsZero())
}

func TestDrift(t *testing.T) {
	account := checking("1000")
	account.Balance = dec("1175")
	txs := []model.Transaction{credit("acct-1", "150", "2025-10-01")}

	assert.True(t, dec("25").Equal(Drift(account, txs)))
}
