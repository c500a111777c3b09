package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/game2048/internal/factory"
	"github.com/mcoot/game2048/internal/middleware"
)

// appFunc is the body of a command that needs the wired application
type appFunc func(ctx context.Context, app *factory.App) error

// withApp builds the logger and application for one command, runs fn behind
// the logging and recovery middleware, then releases both.
func withApp(cmd *cobra.Command, name string, seed *uint64, fn appFunc) error {
	logger, logCloser, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	app, err := factory.New(cfg.FactoryConfig(logger, seed))
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	run := middleware.Chain(
		func(ctx context.Context) error { return fn(ctx, app) },
		middleware.Logging(logger, app.Clock, name),
		middleware.Recovery(logger, middleware.DefaultPanicHandler),
	)
	return run(cmd.Context())
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}
