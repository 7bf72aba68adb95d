package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/auditlog"
)

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, dir, err := openLedger(cmd)
			if err != nil {
				return err
			}

			txnID := args[0]
			removed, err := svc.Delete(txnID)
			if err != nil {
				return err
			}
			if !removed {
				// Unknown ID is a no-op, not an error.
				fmt.Fprintf(cmd.OutOrStdout(), "No transaction with ID %s\n", txnID)
				return nil
			}

			recordMutation(cmd, cfg, dir, auditlog.ActionDelete, "transaction removed", txnID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", txnID)
			return nil
		},
	}
}
