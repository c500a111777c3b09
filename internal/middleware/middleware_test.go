package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/game2048/internal/dependencies/mocks"
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/testutil"
)

func TestRecoveryPassesThroughResult(t *testing.T) {
	want := errors.New("boom")
	run := Recovery(testutil.NopLogger(), DefaultPanicHandler)(func(context.Context) error {
		return want
	})

	assert.ErrorIs(t, run(context.Background()), want)
}

func TestRecoveryConvertsPanic(t *testing.T) {
	logger, buf := testutil.BufferLogger()

	cleaned := false
	run := Recovery(logger, DefaultPanicHandler)(func(context.Context) error {
		defer func() { cleaned = true }()
		panic(model.ErrNoEmptyCell)
	})

	err := run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPanic)
	assert.ErrorIs(t, err, model.ErrNoEmptyCell)
	assert.True(t, cleaned)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "stack")
}

func TestRecoveryConvertsNonErrorPanic(t *testing.T) {
	run := Recovery(testutil.NopLogger(), DefaultPanicHandler)(func(context.Context) error {
		panic("bad state")
	})

	err := run(context.Background())
	assert.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "bad state")
}

func TestLogging(t *testing.T) {
	logger, buf := testutil.BufferLogger()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clk.Step = 3 * time.Second

	ok := Logging(logger, clk, "play")(func(context.Context) error { return nil })
	require.NoError(t, ok(context.Background()))
	assert.Contains(t, buf.String(), `"msg":"command finished"`)
	assert.Contains(t, buf.String(), `"command":"play"`)
	assert.Contains(t, buf.String(), `"duration":3000000000`)

	buf.Reset()
	want := errors.New("no terminal")
	failing := Logging(logger, clk, "play")(func(context.Context) error { return want })
	assert.ErrorIs(t, failing(context.Background()), want)
	assert.Contains(t, buf.String(), `"msg":"command failed"`)
	assert.Contains(t, buf.String(), `"error":"no terminal"`)
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next RunFunc) RunFunc {
			return func(ctx context.Context) error {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	run := Chain(func(context.Context) error {
		order = append(order, "run")
		return nil
	}, mark("outer"), mark("inner"))

	require.NoError(t, run(context.Background()))
	assert.Equal(t, []string{"outer", "inner", "run"}, order)
}
