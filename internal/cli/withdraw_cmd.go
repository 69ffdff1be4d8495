package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newWithdrawCmd(app *App) *cobra.Command {
	var sessionID, packPath string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw a session: delete its snapshot and event log",
		Long: "Withdrawal is irreversible and idempotent; withdrawing an unknown or\n" +
			"already-withdrawn session is a no-op.",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := app.OpenEngine(packPath)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.Withdraw(context.Background(), sessionID); err != nil {
				return err
			}
			fmt.Printf("Session %s withdrawn.\n", sessionID)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID to withdraw")
	cmd.Flags().StringVar(&packPath, "pack", "", "Content pack path (default from config)")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}
