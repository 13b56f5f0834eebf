package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wellbeing/internal/ui"
)

func newReactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reaction <ms>",
		Short: "Record a reaction-test run",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reaction time in milliseconds is required")
			}
			ms, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || ms <= 0 {
				return errors.New("reaction time must be a positive integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, _ := strconv.ParseInt(args[0], 10, 64)

			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.RecordReaction(ctx, ms)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d ms recorded.\n", ui.IconGame, res.Ms)
			if res.Record {
				fmt.Fprintln(out, ui.BadgeNewRecord+" "+ui.Gold.Render(fmt.Sprintf("Personal best: %d ms", res.BestMs)))
			} else {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Personal best: %d ms", res.BestMs)))
			}
			return nil
		},
	}

	return cmd
}
