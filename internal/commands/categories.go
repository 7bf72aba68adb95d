package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the known categories per kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := openLedger(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Income categories:")
			for i, name := range svc.Categories(model.KindIncome) {
				fmt.Fprintf(out, "  %d. %s\n", i+1, name)
			}
			fmt.Fprintln(out, "Expense categories:")
			for i, name := range svc.Categories(model.KindExpense) {
				fmt.Fprintf(out, "  %d. %s\n", i+1, name)
			}
			return nil
		},
	}
}
