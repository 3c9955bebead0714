package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/health"
	"github.com/fintrack-dev/fintrack/internal/model"
)

func newHealthCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Score each business entity against its configured metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, snap, err := loadInputs(opts)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BUSINESS\tSCORE\tSTATUS\tTOP DETRACTORS")
			for _, entity := range snap.Businesses {
				var txs []model.Transaction
				for _, tx := range snap.Transactions {
					if tx.BusinessID == entity.ID {
						txs = append(txs, tx)
					}
				}

				result := health.ComputeHealth(entity, txs)
				detractors := ""
				for i, d := range result.Diagnosis.TopDetractors {
					if i > 0 {
						detractors += ", "
					}
					detractors += fmt.Sprintf("%s (%.0f%%)", d.Kind, d.Ratio*100)
				}
				fmt.Fprintf(w, "%s\t%.0f\t%s\t%s\n", entity.Name, result.Score, result.Status, detractors)
			}
			return w.Flush()
		},
	}
}
