package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wellbeing/internal/tui"
	"wellbeing/internal/ui"
)

func newQuizCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take the digital well-being quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Fail before the questions, not at submit time.
			if _, err := currentAccount(ctx, svc); err != nil {
				return err
			}

			res, err := tui.RunQuiz(ctx, svc, group, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res == nil {
				fmt.Fprintln(out, ui.Muted.Render("Quiz abandoned, nothing recorded."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconQuiz, "Your result"))
			fmt.Fprintln(out, ui.LabelValue("Score", fmt.Sprintf("%d%% (%d / %d points)", res.Pct, res.Sum, res.Max)))
			fmt.Fprintln(out, ui.LabelValue("Average response", fmt.Sprintf("%.1f", res.Average)))
			fmt.Fprintln(out, ui.LabelValue("Category", ui.BandText(string(res.Band))))
			fmt.Fprintln(out, ui.LabelValue("Risk level", res.Band.RiskLevel()))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(res.Band.Message()))
			for _, rec := range res.Band.Recommendations() {
				fmt.Fprintln(out, "- "+rec)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "adult", "Age group (kid|teen|adult)")

	return cmd
}
