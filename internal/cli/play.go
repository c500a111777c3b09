package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mcoot/game2048/internal/factory"
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/session"
	"github.com/mcoot/game2048/internal/terminal"
)

func newPlayCmd() *cobra.Command {
	opts := DefaultGameOptions()
	var headless bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long: `Play 2048 until you press Q.

With --headless the board is written to stdout as plain text after every
command and keys are read from stdin, one symbol per character.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts, headless)
		},
	}

	addGameFlags(cmd, &opts)
	addHeadlessFlag(cmd, &headless)
	return cmd
}

func addGameFlags(cmd *cobra.Command, opts *GameOptions) {
	f := cmd.Flags()
	f.IntVar(&opts.Height, "height", opts.Height, "Board rows")
	f.IntVar(&opts.Width, "width", opts.Width, "Board columns")
	f.IntVar(&opts.Win, "win", opts.Win, "Tile value that wins the game")
	f.IntVar(&opts.FourPercent, "four-percent", opts.FourPercent, "Chance in percent that a new tile is a 4")
	f.Uint64Var(&opts.Seed, "seed", opts.Seed, "Seed tile placement for a reproducible game")
	f.StringVar(&opts.OnEnd, "on-end", opts.OnEnd, "After a win or loss: restart, pause")
}

func addHeadlessFlag(cmd *cobra.Command, headless *bool) {
	cmd.Flags().BoolVar(headless, "headless", false, "Read keys from stdin and write frames to stdout")
}

// seed returns the --seed value, or nil when the flag was not given
func (o GameOptions) seed(cmd *cobra.Command) *uint64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	s := o.Seed
	return &s
}

func runPlay(cmd *cobra.Command, opts GameOptions, headless bool) error {
	policy, err := model.ParseEndPolicy(opts.OnEnd)
	if err != nil {
		return fmt.Errorf("%w: %s", err, opts.OnEnd)
	}

	return withApp(cmd, "play", opts.seed(cmd), func(ctx context.Context, app *factory.App) error {
		engine, err := app.NewEngine(opts.GridConfig())
		if err != nil {
			return fmt.Errorf("invalid board: %w", err)
		}

		var (
			in       session.Input
			renderer session.Renderer
			restore  = func() {}
		)
		if headless {
			frames := cmd.OutOrStdout()
			if cfg.Output == "json" {
				frames = io.Discard
			}
			in = terminal.NewStreamInput(cmd.InOrStdin())
			renderer = terminal.NewStreamRenderer(frames)
		} else {
			scr, err := terminal.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			defer scr.Close()
			in, renderer, restore = scr, scr, scr.Close
		}

		loop := app.NewSession(engine, in, renderer, session.Options{EndPolicy: policy})
		runErr := loop.Run(ctx)
		restore()
		if runErr != nil {
			return runErr
		}

		output(cmd).Print(newSessionSummary("", engine.HighScore(), loop.Results()))
		return nil
	})
}
