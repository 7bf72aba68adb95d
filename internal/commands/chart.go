package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

const chartWidth = 40

func newChartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render text charts from ledger aggregates",
	}

	cmd.AddCommand(newChartCategoryCommand(), newChartMonthlyCommand())

	return cmd
}

func newChartCategoryCommand() *cobra.Command {
	var kindStr string

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Category breakdown as horizontal bars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, _, err := openLedger(cmd)
			if err != nil {
				return err
			}

			var totals map[string]decimal.Decimal
			title := "Net by category"
			if kindStr != "" {
				kind := model.Kind(strings.ToLower(kindStr))
				if err := ledger.ValidateKind(kind); err != nil {
					return err
				}
				totals = report.CategoryTotalsByKind(svc.Transactions(), kind)
				title = fmt.Sprintf("%s by category", strings.ToUpper(kindStr[:1])+strings.ToLower(kindStr[1:]))
			} else {
				totals = report.CategoryTotals(svc.Transactions())
			}

			out := cmd.OutOrStdout()
			if len(totals) == 0 {
				fmt.Fprintln(out, "No data to chart.")
				return nil
			}

			max := decimal.Zero
			for _, v := range totals {
				if v.Abs().GreaterThan(max) {
					max = v.Abs()
				}
			}

			fmt.Fprintf(out, "%s:\n", title)
			for _, name := range sortedByTotal(totals) {
				v := totals[name]
				fmt.Fprintf(out, "  %-16s %10s  %s\n",
					name, cfg.Currency+v.StringFixed(2), bar(v.Abs(), max))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kindStr, "kind", "", "chart a single kind (income or expense)")

	return cmd
}

func newChartMonthlyCommand() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Income vs expenses per month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, _, err := openLedger(cmd)
			if err != nil {
				return err
			}

			if months == 0 {
				months = cfg.Report.ChartMonths
			}
			if months < 1 {
				return fmt.Errorf("months must be at least 1, got %d", months)
			}

			series := report.MonthlySeries(svc.Transactions(), months)

			max := decimal.Zero
			for _, b := range series {
				if b.Income.GreaterThan(max) {
					max = b.Income
				}
				if b.Expenses.GreaterThan(max) {
					max = b.Expenses
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Income vs expenses:")
			for _, b := range series {
				fmt.Fprintf(out, "  %s  income   %10s  %s\n",
					b.Month, cfg.Currency+b.Income.StringFixed(2), bar(b.Income, max))
				fmt.Fprintf(out, "           expenses %10s  %s\n",
					cfg.Currency+b.Expenses.StringFixed(2), bar(b.Expenses, max))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 0, "number of months (default from config)")

	return cmd
}

// bar scales value against max into a fixed-width block bar.
func bar(value, max decimal.Decimal) string {
	if max.Sign() <= 0 || value.Sign() <= 0 {
		return ""
	}
	n := int(value.Mul(decimal.NewFromInt(chartWidth)).Div(max).IntPart())
	if n < 1 {
		n = 1
	}
	if n > chartWidth {
		n = chartWidth
	}
	return strings.Repeat("#", n)
}

// sortedByTotal orders category names by descending absolute total, ties by
// name, so chart and report output is stable.
func sortedByTotal(totals map[string]decimal.Decimal) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := totals[names[i]].Abs(), totals[names[j]].Abs()
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return names[i] < names[j]
	})
	return names
}
