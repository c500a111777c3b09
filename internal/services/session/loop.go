package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/game2048/internal/dependencies/clock"
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/grid"
	"github.com/mcoot/game2048/internal/services/input"
)

// Input supplies raw key symbols. NextSymbol blocks until a symbol is
// available and returns io.EOF once no more input will arrive.
type Input interface {
	NextSymbol(ctx context.Context) (rune, error)
}

// Renderer draws a snapshot of the session
type Renderer interface {
	Render(view model.GameView) error
}

// Recorder receives every game that leaves play
type Recorder interface {
	RecordGame(ctx context.Context, result model.GameResult) error
}

// Options tune a Loop
type Options struct {
	EndPolicy model.EndPolicy
	// MaxGames ends the session after this many recorded games (0 means no limit)
	MaxGames int
}

// Loop runs one interactive session until Exit
type Loop struct {
	engine    grid.EngineInterface
	machine   *Machine
	input     Input
	renderer  Renderer
	recorder  Recorder
	clock     clock.Clock
	logger    *slog.Logger
	opts      Options
	state     model.SessionState
	startedAt time.Time
	results   []model.GameResult
}

// NewLoop creates a Loop. recorder may be nil.
func NewLoop(
	engine grid.EngineInterface,
	in Input,
	renderer Renderer,
	recorder Recorder,
	clk clock.Clock,
	logger *slog.Logger,
	opts Options,
) *Loop {
	return &Loop{
		engine:   engine,
		machine:  NewMachine(engine, opts.EndPolicy),
		input:    in,
		renderer: renderer,
		recorder: recorder,
		clock:    clk,
		logger:   logger.With(slog.String("component", "session")),
		opts:     opts,
		state:    model.SessionStateInit,
	}
}

// Run drives the session until Exit, the input ends or ctx is cancelled.
// Reaching Exit, including by end of input, returns nil.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("session started", slog.String("end_policy", string(l.machine.Policy())))

	for l.state != model.SessionStateExit {
		if l.state == model.SessionStateInit {
			// init ignores the command
			t := l.machine.Step(l.state, model.CommandRestart)
			l.state = t.To
			l.startedAt = l.clock.Now()
			continue
		}

		if err := l.renderer.Render(l.View()); err != nil {
			return fmt.Errorf("render %s: %w", l.state, err)
		}

		cmd, err := l.nextCommand(ctx)
		if err != nil {
			return err
		}

		t := l.machine.Step(l.state, cmd)
		if t.Ended != "" {
			l.finish(ctx, t.Ended)
		}
		l.state = t.To

		if l.opts.MaxGames > 0 && len(l.results) >= l.opts.MaxGames {
			l.state = model.SessionStateExit
		}
	}

	l.logger.Info("session finished",
		slog.Int("games", len(l.results)),
		slog.Int("high_score", l.engine.HighScore()),
	)
	return nil
}

// State returns the current session state
func (l *Loop) State() model.SessionState {
	return l.state
}

// View returns the engine snapshot tagged with the session state
func (l *Loop) View() model.GameView {
	view := l.engine.View()
	view.State = l.state
	return view
}

// Results returns every game recorded during Run
func (l *Loop) Results() []model.GameResult {
	return l.results
}

// nextCommand reads symbols until one classifies. End of input reads as Exit.
func (l *Loop) nextCommand(ctx context.Context) (model.Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		symbol, err := l.input.NextSymbol(ctx)
		if errors.Is(err, io.EOF) {
			return model.CommandExit, nil
		}
		if err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}

		if cmd, ok := input.Classify(symbol); ok {
			return cmd, nil
		}
		l.logger.Debug("ignored input", slog.String("symbol", string(symbol)))
	}
}

// finish reports the game that just left play. Games without a single
// legal move are dropped.
func (l *Loop) finish(ctx context.Context, outcome model.GameOutcome) {
	if l.engine.Moves() == 0 {
		return
	}

	board := l.engine.Board()
	view := l.engine.View()
	result := model.GameResult{
		Outcome:   outcome,
		Cells:     view.Cells,
		Score:     view.Score,
		MaxTile:   board.MaxTile(),
		Moves:     view.Moves,
		WinValue:  view.WinValue,
		StartedAt: l.startedAt,
		EndedAt:   l.clock.Now(),
	}
	l.results = append(l.results, result)

	l.logger.Info("game finished",
		slog.String("outcome", string(outcome)),
		slog.Int("score", result.Score),
		slog.Int("max_tile", result.MaxTile),
		slog.Int("moves", result.Moves),
	)

	if l.recorder == nil {
		return
	}
	if err := l.recorder.RecordGame(ctx, result); err != nil {
		l.logger.Error("failed to record game",
			slog.String("outcome", string(outcome)),
			slog.String("error", err.Error()),
		)
	}
}
