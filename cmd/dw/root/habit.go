package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wellbeing/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Track the weekly habit grid",
	}

	cmd.AddCommand(newHabitToggleCmd(), newHabitResetCmd())

	return cmd
}

func newHabitToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <habit> <day>",
		Short: "Flip one day's mark (habit index, day 0=Sunday..6=Saturday)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("habit index and day index are required")
			}
			for _, a := range args {
				if _, err := strconv.Atoi(a); err != nil {
					return errors.New("habit and day must be integers")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			habit, _ := strconv.Atoi(args[0])
			day, _ := strconv.Atoi(args[1])

			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ToggleHabit(ctx, habit, day); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCheck+" Updated. See `dw status` for the grid."))
			return nil
		},
	}

	return cmd
}

func newHabitResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-week",
		Short: "Clear every habit's week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ResetHabitWeek(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Week cleared."))
			return nil
		},
	}

	return cmd
}
