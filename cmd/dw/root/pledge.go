package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wellbeing/internal/account"
	"wellbeing/internal/engine"
	"wellbeing/internal/pledge"
	"wellbeing/internal/ui"
)

func newPledgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pledge",
		Short: "Commit to digital well-being pledges",
	}

	cmd.AddCommand(
		newPledgeListCmd(),
		newPledgeCommitCmd(),
		newPledgeMineCmd(),
		newPledgeCompleteCmd(),
		newPledgeArchiveCmd(),
		newPledgePhotoCmd(),
		newPledgeGalleryCmd(),
	)

	return cmd
}

func currentAccount(ctx context.Context, svc *engine.Service) (*account.Account, error) {
	acct, err := svc.Current(ctx)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, engine.ErrNotLoggedIn
	}
	return acct, nil
}

func newPledgeListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the pledge catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPledge, "Pledge catalog"))
			for _, p := range pledge.Catalog {
				fmt.Fprintf(out, "%s %s %s %s\n  %s\n", p.Icon, ui.Key.Render(p.ID), ui.H2.Render(p.Title), ui.Muted.Render("["+p.Category+"]"), p.Description)
			}
			return nil
		},
	}

	return cmd
}

func newPledgeCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit <pledge-id>...",
		Short: "Commit to one or more pledges",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one pledge id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, db, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := currentAccount(ctx, svc)
			if err != nil {
				return err
			}
			created, err := pledge.NewStore(db).Commit(ctx, acct, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if created == 0 {
				fmt.Fprintln(out, ui.Muted.Render("You have already committed to these pledges."))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s Committed to %d pledge(s)!", ui.IconCheck, created)))
			return nil
		},
	}

	return cmd
}

func newPledgeMineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Show your active and completed pledges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, db, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := currentAccount(ctx, svc)
			if err != nil {
				return err
			}
			mine, err := pledge.NewStore(db).Mine(ctx, acct.Email)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(mine) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No pledges yet. See `dw pledge list`."))
				return nil
			}
			now := time.Now()
			for _, c := range mine {
				status := ui.Good.Render(fmt.Sprintf("Active — Day %d", c.ActiveDays(now)))
				if c.Status == pledge.StatusCompleted {
					status = ui.Gold.Render("Completed " + time.UnixMilli(*c.CompletedAt).Format("2006-01-02"))
				}
				fmt.Fprintf(out, "%s %s — %s\n  %s\n  %s\n", c.Icon, ui.H2.Render(c.Title), status, c.Description, ui.Muted.Render("id: "+c.ID))
			}
			return nil
		},
	}

	return cmd
}

func newPledgeCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <commitment-id>",
		Short: "Mark one of your pledges completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, db, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := currentAccount(ctx, svc)
			if err != nil {
				return err
			}
			if err := pledge.NewStore(db).Complete(ctx, acct.Email, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render("🎉 Congratulations! You completed your pledge!"))
			return nil
		},
	}

	return cmd
}

func newPledgeArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <commitment-id>",
		Short: "Archive one of your pledges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, db, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := currentAccount(ctx, svc)
			if err != nil {
				return err
			}
			if err := pledge.NewStore(db).Archive(ctx, acct.Email, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Archived. You can select it again from the catalog."))
			return nil
		},
	}

	return cmd
}

func newPledgePhotoCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "photo <image-file>",
		Short: "Add a photo pledge to the gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("%w: a pledge statement is required (--text)", account.ErrValidation)
			}

			ctx := context.Background()
			svc, db, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := currentAccount(ctx, svc)
			if err != nil {
				return err
			}
			if _, err := pledge.NewStore(db).AddPhoto(ctx, acct.Name, text, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCheck+" Pledge photo added to the gallery."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "Your pledge statement (max 200 characters)")

	return cmd
}

func newPledgeGalleryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Show the pledge photo gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, db, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			gallery, err := pledge.NewStore(db).Gallery(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(gallery) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No pledges yet. Be the first to make a commitment!"))
				return nil
			}
			for _, e := range gallery {
				when := time.UnixMilli(e.At).Format("2006-01-02")
				fmt.Fprintf(out, "%s %s — %q %s\n", ui.IconPledge, ui.Key.Render(e.Name), e.Text, ui.Muted.Render(when))
			}
			return nil
		},
	}

	return cmd
}
