package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/game2048/internal/factory"
	"github.com/mcoot/game2048/internal/model"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded games",
		Long: `List recorded games, newest first.

Games only outlive the process with --storage redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, "history", nil, func(ctx context.Context, app *factory.App) error {
				records, err := app.HistoryService.Recent(ctx, limit)
				if err != nil {
					return err
				}

				games := make([]GameSummary, 0, len(records))
				for _, rec := range records {
					games = append(games, newRecordSummary(rec, false))
				}
				output(cmd).Print(games)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of games to list (0 lists all)")

	cmd.AddCommand(newHistoryShowCmd())
	cmd.AddCommand(newHistoryDeleteCmd())

	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a recorded game with its final board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, "history show", nil, func(ctx context.Context, app *factory.App) error {
				rec, err := app.HistoryService.Get(ctx, model.GameID(args[0]))
				if err != nil {
					return fmt.Errorf("game %s: %w", args[0], err)
				}

				output(cmd).Print(newRecordSummary(rec, true))
				return nil
			})
		},
	}
}

func newHistoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, "history delete", nil, func(ctx context.Context, app *factory.App) error {
				if err := app.HistoryService.Delete(ctx, model.GameID(args[0])); err != nil {
					return fmt.Errorf("game %s: %w", args[0], err)
				}

				output(cmd).PrintMessage(fmt.Sprintf("Deleted game %s", args[0]))
				return nil
			})
		},
	}
}
