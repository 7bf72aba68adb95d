// Package commands wires the fintrack CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fintrack",
		Short:   "Personal income and expense ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("dir", ".", "ledger directory")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(),
		newListCommand(),
		newDeleteCommand(),
		newBalanceCommand(),
		newSummaryCommand(),
		newReportCommand(),
		newCategoriesCommand(),
		newChartCommand(),
		newImportCommand(),
	)

	return rootCmd
}
