package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wellbeing/internal/engine"
	"wellbeing/internal/ui"
)

// `dw game record` is the CLI face of the plugin contract: any same-machine
// game can shell out to it to push a result into the active account.
func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Report external game results",
	}

	cmd.AddCommand(newGameRecordCmd(), newGamePlayedCmd())

	return cmd
}

func newGameRecordCmd() *cobra.Command {
	var name string
	var count int
	var bestTimeMs int64
	var bestScore int

	cmd := &cobra.Command{
		Use:   "record <game-id>",
		Short: "Record a result for an external game",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("game id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res := engine.GameResult{
				GameID: args[0],
				Name:   name,
				Count:  count,
			}
			if cmd.Flags().Changed("best-time") {
				res.BestTimeMs = &bestTimeMs
			}
			if cmd.Flags().Changed("best-score") {
				res.BestScore = &bestScore
			}

			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.RecordGameResult(ctx, res); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCheck+" Result recorded."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name for the game")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of plays to add")
	cmd.Flags().Int64Var(&bestTimeMs, "best-time", 0, "Best time in milliseconds for this session")
	cmd.Flags().IntVar(&bestScore, "best-score", 0, "Best score for this session")

	return cmd
}

func newGamePlayedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "played",
		Short: "Bump the games-played counter without per-game detail",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.RecordGamePlayed(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCheck+" Recorded."))
			return nil
		},
	}

	return cmd
}
