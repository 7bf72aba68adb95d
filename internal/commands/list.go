package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/model"
)

func newListCommand() *cobra.Command {
	var kindStr, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, _, err := openLedger(cmd)
			if err != nil {
				return err
			}

			var txns []model.Transaction
			switch {
			case kindStr != "":
				kind := model.Kind(strings.ToLower(kindStr))
				if err := ledger.ValidateKind(kind); err != nil {
					return err
				}
				txns = svc.ByKind(kind)
			case category != "":
				txns = svc.ByCategory(category)
			default:
				txns = svc.Transactions()
			}

			if len(txns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions found.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tKIND\tAMOUNT\tCATEGORY\tDESCRIPTION\tID")
			for _, t := range txns {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.Date.Format(model.DateFormat), t.Kind,
					formatAmount(cfg, t.Amount), t.Category, t.Description, t.ID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&kindStr, "kind", "", "filter by kind (income or expense)")
	cmd.Flags().StringVar(&category, "category", "", "filter by category name")
	cmd.MarkFlagsMutuallyExclusive("kind", "category")

	return cmd
}
