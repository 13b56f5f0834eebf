package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wellbeing/internal/engine"
	"wellbeing/internal/ui"
)

func newTipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Show today's well-being tip",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconBulb+" "+engine.TipOfTheDay(time.Now()))
			return nil
		},
	}

	return cmd
}
