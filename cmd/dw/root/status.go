package root

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"wellbeing/internal/engine"
	"wellbeing/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the dashboard for the current account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := svc.Current(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if acct == nil {
				fmt.Fprintln(out, ui.Muted.Render("Not logged in. Run `dw login` or `dw register` first."))
				return nil
			}
			p := acct.Progress

			fmt.Fprintln(out, ui.Heading(ui.IconLeaf, "Digital Well-Being — "+acct.Name))
			fmt.Fprintln(out, ui.LabelValue("Games played", p.GamesPlayed))
			fmt.Fprintln(out, ui.LabelValue("Best reaction", formatBest(p.BestReactionMs)))
			fmt.Fprintln(out, ui.LabelValue("Avg reaction", formatAvg(p.ReactionHistoryMs)))
			fmt.Fprintln(out, ui.LabelValue("Quizzes taken", p.QuizzesTaken))
			fmt.Fprintln(out, ui.LabelValue("Last quiz score", formatScore(p.LastQuizScore)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconStreak+" Check-ins"))
			fmt.Fprintln(out, ui.LabelValue("Streak", p.Checkins.Streak))
			fmt.Fprintln(out, ui.LabelValue("Weekly goal", p.Checkins.WeeklyGoal))
			badges := "—"
			if len(p.Checkins.Badges) > 0 {
				badges = ""
				for i, b := range p.Checkins.Badges {
					if i > 0 {
						badges += ", "
					}
					badges += b
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Badges", badges))
			fmt.Fprintln(out, "")

			if len(p.QuizHistory) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconQuiz+" Quiz history"))
				for i := len(p.QuizHistory) - 1; i >= 0; i-- {
					h := p.QuizHistory[i]
					when := time.UnixMilli(h.At).Format("2006-01-02 15:04")
					fmt.Fprintf(out, "- %s — %d/%d (%d%%) %s\n", h.Group, h.Sum, h.Max, h.Pct, ui.Muted.Render(when))
				}
				fmt.Fprintln(out, "")
			}

			if len(p.GamesByID) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconGame+" Games"))
				ids := make([]string, 0, len(p.GamesByID))
				for id := range p.GamesByID {
					ids = append(ids, id)
				}
				sort.Strings(ids)
				for _, id := range ids {
					g := p.GamesByID[id]
					line := fmt.Sprintf("- %s — plays: %d", g.Name, g.Count)
					if g.BestScore != nil {
						line += fmt.Sprintf(", best score: %d", *g.BestScore)
					}
					if g.BestTimeMs != nil {
						line += fmt.Sprintf(", best time: %d ms", *g.BestTimeMs)
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, "")
			}

			if len(p.FocusLogs) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconTimer+" Recent focus sessions"))
				logs := p.FocusLogs
				for i := len(logs) - 1; i >= 0 && i >= len(logs)-5; i-- {
					when := time.UnixMilli(logs[i].At).Format("2006-01-02 15:04")
					fmt.Fprintf(out, "- %d min %s\n", logs[i].Minutes, ui.Muted.Render(when))
				}
				fmt.Fprintln(out, "")
			}

			fmt.Fprintln(out, ui.H2.Render(ui.IconCheck+" Habits (S M T W T F S)"))
			for i, h := range p.Habits {
				fmt.Fprintf(out, "%d. %-28s %s\n", i, h.Name, weekMarks(h.Week))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.IconBulb+" "+ui.Muted.Render(engine.TipOfTheDay(time.Now())))
			return nil
		},
	}

	return cmd
}

func formatBest(best *int64) string {
	if best == nil {
		return "—"
	}
	return fmt.Sprintf("%d ms", *best)
}

func formatAvg(history []int64) string {
	if len(history) == 0 {
		return "—"
	}
	var sum int64
	for _, v := range history {
		sum += v
	}
	return fmt.Sprintf("%d ms", sum/int64(len(history)))
}

func formatScore(score int) string {
	if score == 0 {
		return "—"
	}
	return fmt.Sprintf("%d", score)
}

func weekMarks(week []int) string {
	marks := ""
	for _, v := range week {
		if v != 0 {
			marks += ui.Good.Render("●") + " "
		} else {
			marks += ui.Muted.Render("○") + " "
		}
	}
	return marks
}
