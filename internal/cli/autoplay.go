package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/game2048/internal/factory"
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/session"
	"github.com/mcoot/game2048/internal/terminal"
)

type autoplayOptions struct {
	GameOptions
	Strategy string
	Games    int
	MaxMoves int
	Show     bool
}

func newAutoplayCmd() *cobra.Command {
	opts := autoplayOptions{
		GameOptions: DefaultGameOptions(),
		Strategy:    model.BotStrategyGreedy,
		Games:       1,
	}

	cmd := &cobra.Command{
		Use:   "autoplay",
		Short: "Let a bot play",
		Long: `Let a bot play one or more games and report the results.

The bot stops after --games finished games, or earlier once it has issued
--max-moves moves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAutoplay(cmd, opts)
		},
	}

	addGameFlags(cmd, &opts.GameOptions)
	cmd.Flags().StringVar(&opts.Strategy, "strategy", opts.Strategy, "Bot strategy: "+strings.Join(model.ValidBotStrategies(), ", "))
	cmd.Flags().IntVar(&opts.Games, "games", opts.Games, "Number of games to finish")
	cmd.Flags().IntVar(&opts.MaxMoves, "max-moves", opts.MaxMoves, "Stop after this many moves (0 means no limit)")
	cmd.Flags().BoolVar(&opts.Show, "show", opts.Show, "Write every frame to stdout")
	return cmd
}

func runAutoplay(cmd *cobra.Command, opts autoplayOptions) error {
	if opts.Games < 1 {
		return errors.New("--games must be at least 1")
	}
	policy, err := model.ParseEndPolicy(opts.OnEnd)
	if err != nil {
		return fmt.Errorf("%w: %s", err, opts.OnEnd)
	}

	return withApp(cmd, "autoplay", opts.seed(cmd), func(ctx context.Context, app *factory.App) error {
		engine, err := app.NewEngine(opts.GridConfig())
		if err != nil {
			return fmt.Errorf("invalid board: %w", err)
		}

		player, err := app.NewBot(engine, opts.Strategy, opts.MaxMoves)
		if err != nil {
			return err
		}

		frames := io.Discard
		if opts.Show && cfg.Output == "text" {
			frames = cmd.OutOrStdout()
		}

		loop := app.NewSession(engine, player, terminal.NewStreamRenderer(frames), session.Options{
			EndPolicy: policy,
			MaxGames:  opts.Games,
		})
		if err := loop.Run(ctx); err != nil {
			return err
		}

		output(cmd).Print(newSessionSummary(opts.Strategy, engine.HighScore(), loop.Results()))
		return nil
	})
}
