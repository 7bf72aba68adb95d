package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, _, err := openLedger(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s\n", formatAmount(cfg, svc.Balance()))
			return nil
		},
	}
}
