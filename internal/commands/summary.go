package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a monthly summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be 1..12, got %d", month)
			}

			svc, cfg, _, err := openLedger(cmd)
			if err != nil {
				return err
			}

			sum := svc.MonthlySummary(year, time.Month(month))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Summary for %04d-%02d\n", year, month)
			fmt.Fprintf(out, "  Income:       %s\n", formatAmount(cfg, sum.Income))
			fmt.Fprintf(out, "  Expenses:     %s\n", formatAmount(cfg, sum.Expenses))
			fmt.Fprintf(out, "  Balance:      %s\n", formatAmount(cfg, sum.Balance))
			fmt.Fprintf(out, "  Transactions: %d\n", sum.Count)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1..12 (default current)")

	return cmd
}
