package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/report"
)

func newReportCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a spending report for the trailing window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, _, err := openLedger(cmd)
			if err != nil {
				return err
			}

			if days == 0 {
				days = cfg.Report.WindowDays
			}
			if days < 1 {
				return fmt.Errorf("window must be at least 1 day, got %d", days)
			}

			rep := report.SpendingReport(svc.Transactions(), days)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Spending report: %s to %s (%d days)\n",
				rep.Start.Format("2006-01-02"), rep.End.Format("2006-01-02"), days)
			fmt.Fprintf(out, "  Total income:   %s\n", formatAmount(cfg, rep.TotalIncome))
			fmt.Fprintf(out, "  Total expenses: %s\n", formatAmount(cfg, rep.TotalExpenses))
			fmt.Fprintf(out, "  Net balance:    %s\n", formatAmount(cfg, rep.NetBalance))

			printCategoryBlock(out, cfg, "Expenses by category", rep.ExpenseByCategory)
			printCategoryBlock(out, cfg, "Income by category", rep.IncomeByCategory)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "window length in days (default from config)")

	return cmd
}

func printCategoryBlock(out io.Writer, cfg *config.Config, title string, totals map[string]decimal.Decimal) {
	if len(totals) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", title)
	for _, name := range sortedByTotal(totals) {
		fmt.Fprintf(out, "  %-16s %s\n", name, formatAmount(cfg, totals[name]))
	}
}
