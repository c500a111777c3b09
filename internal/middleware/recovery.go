package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// ErrPanic marks an error produced from a recovered panic
var ErrPanic = errors.New("panic recovered")

// RunFunc is the body of a command
type RunFunc func(ctx context.Context) error

// Middleware wraps a RunFunc
type Middleware func(RunFunc) RunFunc

// Chain applies mws to run, the first becoming the outermost
func Chain(run RunFunc, mws ...Middleware) RunFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		run = mws[i](run)
	}
	return run
}

// PanicHandler turns a recovered value into the error the command returns
type PanicHandler func(ctx context.Context, recovered any) error

// Recovery creates panic recovery middleware with a custom panic handler.
// Deferred calls inside next, such as restoring the terminal, run before the panic is logged.
func Recovery(logger *slog.Logger, handler PanicHandler) Middleware {
	return func(next RunFunc) RunFunc {
		return func(ctx context.Context) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						slog.Any("error", rec),
						slog.String("stack", string(debug.Stack())),
					)

					err = handler(ctx, rec)
				}
			}()

			return next(ctx)
		}
	}
}

// DefaultPanicHandler wraps the recovered value in ErrPanic
func DefaultPanicHandler(_ context.Context, recovered any) error {
	if err, ok := recovered.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrPanic, recovered)
}
