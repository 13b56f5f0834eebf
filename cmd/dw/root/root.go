package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wellbeing/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "dw",
	Short:         "Local-first digital well-being tracker",
	Long:          "dw is a local-first CLI for tracking digital well-being: check-ins, quizzes, game results, focus sessions, habits, reviews and pledges.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newRegisterCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newCheckinCmd(),
		newQuizCmd(),
		newReactionCmd(),
		newGameCmd(),
		newFocusCmd(),
		newHabitCmd(),
		newReviewCmd(),
		newPledgeCmd(),
		newTipCmd(),
		newExportCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
