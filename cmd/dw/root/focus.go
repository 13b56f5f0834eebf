package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wellbeing/internal/tui"
	"wellbeing/internal/ui"
)

func newFocusCmd() *cobra.Command {
	var minutes int
	var logOnly bool

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a focus session and log it on completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Fail before the timer runs, not when the log is written.
			if _, err := currentAccount(ctx, svc); err != nil {
				return err
			}

			if logOnly {
				if err := svc.LogFocus(ctx, minutes); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCheck+" Focus session logged."))
				return nil
			}

			done, err := tui.RunFocus(ctx, svc, minutes, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if done {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCheck+" Session complete and logged. Nice work."))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Stopped early, nothing logged."))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 25, "Session length in minutes (1-120)")
	cmd.Flags().BoolVar(&logOnly, "log", false, "Log a completed session without running the timer")

	return cmd
}
