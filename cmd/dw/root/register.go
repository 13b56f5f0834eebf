package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wellbeing/internal/account"
	"wellbeing/internal/ui"
)

func newRegisterCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create an account and log in",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("email is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			email := account.NormalizeEmail(args[0])
			if !account.ValidEmail(email) {
				return fmt.Errorf("%w: invalid email format", account.ErrValidation)
			}
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("%w: a display name is required (--name)", account.ErrValidation)
			}

			password, err := promptPassword(cmd.OutOrStdout(), "Choose a password")
			if err != nil {
				return err
			}
			if len(password) < 6 {
				return fmt.Errorf("%w: password must be at least 6 characters", account.ErrValidation)
			}
			confirm, err := promptPassword(cmd.OutOrStdout(), "Confirm password")
			if err != nil {
				return err
			}
			if confirm != password {
				return fmt.Errorf("%w: passwords do not match", account.ErrValidation)
			}

			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := svc.Register(ctx, name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCheck+" Welcome, "+acct.Name+"! You are now logged in."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name")

	return cmd
}
