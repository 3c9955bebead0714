// Package commands wires the engine into a cobra CLI. This layer owns
// all I/O: it loads the snapshot and config through their collaborator
// packages, calls the pure engine, and prints or persists the results.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/buildinfo"
	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/store"
)

type rootOptions struct {
	dataPath   string
	configPath string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "fintrack",
		Short:   "Ledger reconciliation and financial reporting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "fintrack.json", "path to the data snapshot")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "fintrack.yaml", "path to the configuration file")

	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newReconcileCommand(opts))
	rootCmd.AddCommand(newBudgetsCommand(opts))
	rootCmd.AddCommand(newHealthCommand(opts))

	return rootCmd
}

// loadInputs reads the config and snapshot the subcommands share.
func loadInputs(opts *rootOptions) (*config.Config, *store.Snapshot, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	snap, err := store.Load(opts.dataPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return cfg, snap, nil
}
