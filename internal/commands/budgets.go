package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/budget"
	"github.com/fintrack-dev/fintrack/internal/currency"
	"github.com/fintrack-dev/fintrack/internal/model"
)

func newBudgetsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "budgets",
		Short: "Show current-month budget consumption and pacing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, snap, err := loadInputs(opts)
			if err != nil {
				return err
			}

			today := time.Now().Format(model.DateFormat)
			enriched := budget.ComputeSpent(snap.Budgets, snap.Transactions, cfg.BaseCurrency, cfg.RateTable(), cfg.BudgetAliases(), today)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tSPENT\tLIMIT\tEXPECTED\tPACE")
			for _, b := range enriched {
				p := budget.Pace(b, today)
				pace := "on track"
				if p.OverLimit {
					pace = "over limit"
				} else if p.Ahead {
					pace = "ahead"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					b.Category,
					currency.Format(b.Spent, cfg.BaseCurrency, currency.Options{}),
					currency.Format(b.Limit, cfg.BaseCurrency, currency.Options{}),
					currency.Format(p.Expected, cfg.BaseCurrency, currency.Options{}),
					pace)
			}
			return w.Flush()
		},
	}
}
