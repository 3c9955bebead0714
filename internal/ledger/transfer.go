package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/currency"
	"github.com/fintrack-dev/fintrack/internal/model"
)

// TransferCategory tags both legs of a transfer.
const TransferCategory = "Transfer"

// BuildTransfer creates the paired legs of a cross-account transfer: a
// debit on the source and a credit on the destination, with the amount
// converted into the destination account's settlement currency. The
// legs share a transfer group id; the caller persists both and then
// reconciles both accounts, so the pair is atomic from its perspective.
func BuildTransfer(from, to model.Account, amount decimal.Decimal, date string, rates currency.RateTable) (model.Transaction, model.Transaction) {
	group := uuid.NewString()
	converted := currency.Convert(amount, from.Currency, to.Currency, rates)

	debit := model.Transaction{
		ID:            uuid.NewString(),
		AccountID:     from.ID,
		Type:          model.TypeDebit,
		Amount:        amount,
		Currency:      from.Currency,
		Date:          date,
		Category:      TransferCategory,
		TransferGroup: group,
	}
	credit := model.Transaction{
		ID:            uuid.NewString(),
		AccountID:     to.ID,
		Type:          model.TypeCredit,
		Amount:        converted,
		Currency:      to.Currency,
		Date:          date,
		Category:      TransferCategory,
		TransferGroup: group,
	}
	if from.Currency != to.Currency {
		// Keep the original side visible on the destination leg.
		credit.ForeignAmount = amount
		credit.ForeignCurrency = from.Currency
		credit.ExchangeRate = rates.Rate(to.Currency).Div(rates.Rate(from.Currency))
	}
	return debit, credit
}
