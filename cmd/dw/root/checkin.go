package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wellbeing/internal/ui"
)

func newCheckinCmd() *cobra.Command {
	var goal int

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if goal > 0 {
				if err := svc.SetWeeklyGoal(ctx, goal); err != nil {
					return err
				}
			}

			res, err := svc.CheckIn(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Already {
				fmt.Fprintln(out, ui.Muted.Render("Already checked in today. Streak: "+fmt.Sprint(res.Streak)))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s Checked in! Streak: %d", ui.IconStreak, res.Streak)))
			for _, b := range res.NewBadges {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconBadge+" New badge: "+b))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&goal, "goal", 0, "Set the weekly check-in goal before checking in")

	return cmd
}
