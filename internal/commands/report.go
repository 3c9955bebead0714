package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/currency"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var (
		period  string
		scope   string
		from    string
		to      string
		privacy bool
		compact bool
		locale  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a period report with deltas against the prior window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, snap, err := loadInputs(opts)
			if err != nil {
				return err
			}

			spec := report.Spec{
				Period:       report.Period(period),
				Scope:        report.Scope(scope),
				CustomStart:  from,
				CustomEnd:    to,
				BaseCurrency: cfg.BaseCurrency,
			}
			data := report.Data{
				Transactions: snap.Transactions,
				Accounts:     snap.Accounts,
				Businesses:   snap.Businesses,
				Investments:  snap.Investments,
			}

			today := time.Now().Format(model.DateFormat)
			result := report.Generate(spec, data, cfg.RateTable(), today)

			fmtOpts := currency.Options{Privacy: privacy, Compact: compact, Locale: locale}
			printReport(cmd, result, fmtOpts)
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "month", "report period (month|quarter|year|ytd|custom)")
	cmd.Flags().StringVar(&scope, "scope", "all", "transaction scope (personal|business|all)")
	cmd.Flags().StringVar(&from, "from", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "custom range end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&privacy, "privacy", false, "redact monetary values")
	cmd.Flags().BoolVar(&compact, "compact", false, "abbreviate large values")
	cmd.Flags().StringVar(&locale, "locale", "en", "number formatting locale")

	return cmd
}

func printReport(cmd *cobra.Command, snap report.Snapshot, fmtOpts currency.Options) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Report %s .. %s (%s scope)\n", snap.Start, snap.End, snap.Scope)
	fmt.Fprintf(out, "Previous window %s .. %s\n\n", snap.PrevStart, snap.PrevEnd)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Income\t%s\t%+.1f%%\n", currency.Format(snap.Current.Income, snap.Currency, fmtOpts), snap.Deltas.Income)
	fmt.Fprintf(w, "Expense\t%s\t%+.1f%%\n", currency.Format(snap.Current.Expense, snap.Currency, fmtOpts), snap.Deltas.Expense)
	fmt.Fprintf(w, "Net\t%s\t%+.1f%%\n", currency.Format(snap.Current.Net, snap.Currency, fmtOpts), snap.Deltas.Net)
	fmt.Fprintf(w, "Savings rate\t%.1f%%\t\n", snap.Current.SavingsRate*100)
	w.Flush()

	if len(snap.TopCategories) > 0 {
		fmt.Fprintln(out, "\nTop categories")
		w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, c := range snap.TopCategories {
			fmt.Fprintf(w, "%s\t%s\t%.1f%%\n", c.Category, currency.Format(c.Amount, snap.Currency, fmtOpts), c.Share*100)
		}
		w.Flush()
	}

	for _, b := range snap.Businesses {
		fmt.Fprintf(out, "\n%s: revenue %s, expenses %s, net %s (margin %.1f%%)\n",
			b.Name,
			currency.Format(b.Revenue, snap.Currency, fmtOpts),
			currency.Format(b.Expense, snap.Currency, fmtOpts),
			currency.Format(b.NetProfit, snap.Currency, fmtOpts),
			b.Margin)
	}

	fmt.Fprintf(out, "\nNet worth as of %s: %s (liquid %s, invested %s)\n",
		snap.NetWorth.AsOf,
		currency.Format(snap.NetWorth.Total, snap.Currency, fmtOpts),
		currency.Format(snap.NetWorth.Liquid, snap.Currency, fmtOpts),
		currency.Format(snap.NetWorth.Invested, snap.Currency, fmtOpts))
	fmt.Fprintf(out, "Data quality: %.1f%% uncategorized, %d excluded by filters\n",
		snap.Quality.UncategorizedPct, snap.Quality.Excluded)
}
