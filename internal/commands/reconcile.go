package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/currency"
	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newReconcileCommand(opts *rootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Recompute every account balance from the transaction log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, snap, err := loadInputs(opts)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ACCOUNT\tSTORED\tRECONCILED\tDRIFT")
			for _, a := range snap.Accounts {
				drift := ledger.Drift(a, snap.Transactions)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					a.Name,
					currency.Format(a.Balance, a.Currency, currency.Options{}),
					currency.Format(ledger.Reconcile(a, snap.Transactions), a.Currency, currency.Options{}),
					drift.StringFixed(2))
			}
			w.Flush()

			if !write {
				return nil
			}

			snap.Accounts = ledger.ReconcileAll(snap.Accounts, snap.Transactions)
			if err := store.Save(opts.dataPath, snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nwrote corrected balances to %s\n", opts.dataPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "persist the corrected balances")
	return cmd
}
