package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wellbeing/internal/engine"
	"wellbeing/internal/review"
	"wellbeing/internal/ui"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Share and read reviews",
	}

	cmd.AddCommand(newReviewAddCmd(), newReviewListCmd())

	return cmd
}

func newReviewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <rating> <comment...>",
		Short: "Post a review (rating 1-5)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("rating and a short comment are required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("rating must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, _ := strconv.Atoi(args[0])
			text := strings.Join(args[1:], " ")

			ctx := context.Background()
			svc, db, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := svc.Current(ctx)
			if err != nil {
				return err
			}
			if acct == nil {
				return engine.ErrNotLoggedIn
			}

			if _, err := review.NewStore(db).Add(ctx, acct.Name, rating, text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCheck+" Thanks for sharing!"))
			return nil
		},
	}

	return cmd
}

func newReviewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, db, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reviews, err := review.NewStore(db).List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(reviews) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No reviews yet. Be the first to share."))
				return nil
			}
			for _, r := range reviews {
				when := time.UnixMilli(r.At).Format("2006-01-02")
				fmt.Fprintf(out, "%s %s %s\n  %s\n", ui.Gold.Render(ui.Stars(r.Rating)), ui.Key.Render(r.Name), ui.Muted.Render(when), r.Text)
			}
			return nil
		},
	}

	return cmd
}
