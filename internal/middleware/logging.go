package middleware

import (
	"context"
	"log/slog"

	"github.com/mcoot/game2048/internal/dependencies/clock"
)

// Logging creates middleware that logs each command run with its duration and result
func Logging(logger *slog.Logger, clk clock.Clock, command string) Middleware {
	return func(next RunFunc) RunFunc {
		return func(ctx context.Context) error {
			start := clk.Now()

			err := next(ctx)

			attrs := []any{
				slog.String("command", command),
				slog.Duration("duration", clock.Since(clk, start)),
			}
			if err != nil {
				logger.Error("command failed", append(attrs, slog.String("error", err.Error()))...)
				return err
			}

			logger.Info("command finished", attrs...)
			return nil
		}
	}
}
