package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/auditlog"
	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/model"
)

func newAddCommand() *cobra.Command {
	var category, description, dateStr string

	cmd := &cobra.Command{
		Use:   "add <income|expense> <amount>",
		Short: "Record a new transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := model.Kind(strings.ToLower(args[0]))
			if err := ledger.ValidateKind(kind); err != nil {
				return err
			}

			amount, err := ledger.ParseAmount(args[1])
			if err != nil {
				return err
			}

			var date time.Time
			if dateStr != "" {
				date, err = ledger.ParseDay(dateStr)
				if err != nil {
					return err
				}
			}

			svc, cfg, dir, err := openLedger(cmd)
			if err != nil {
				return err
			}

			txn, err := svc.Add(ledger.AddParams{
				Amount:      amount,
				Category:    category,
				Kind:        kind,
				Description: description,
				Date:        date,
			})
			if err != nil {
				return err
			}

			details := fmt.Sprintf("%s %s (%s)", kind, txn.Amount.StringFixed(2), txn.Category)
			recordMutation(cmd, cfg, dir, auditlog.ActionAdd, details, txn.ID)

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s in %s [%s]\n",
				kind, formatAmount(cfg, txn.Amount), txn.Category, txn.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category name (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (YYYY-MM-DD, default today)")

	return cmd
}
