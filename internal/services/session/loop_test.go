package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/game2048/internal/dependencies/mocks"
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/grid"
	"github.com/mcoot/game2048/internal/testutil"
)

// scriptedInput replays symbols, then returns err (io.EOF by default)
type scriptedInput struct {
	symbols []rune
	reads   int
	err     error
}

func (in *scriptedInput) NextSymbol(context.Context) (rune, error) {
	if in.reads >= len(in.symbols) {
		if in.err != nil {
			return 0, in.err
		}
		return 0, io.EOF
	}
	s := in.symbols[in.reads]
	in.reads++
	return s, nil
}

type captureRenderer struct {
	views []model.GameView
	err   error
}

func (r *captureRenderer) Render(view model.GameView) error {
	r.views = append(r.views, view)
	return r.err
}

func (r *captureRenderer) states() []model.SessionState {
	var states []model.SessionState
	for _, v := range r.views {
		states = append(states, v.State)
	}
	return states
}

type captureRecorder struct {
	results []model.GameResult
	err     error
}

func (r *captureRecorder) RecordGame(_ context.Context, result model.GameResult) error {
	r.results = append(r.results, result)
	return r.err
}

type LoopSuite struct {
	suite.Suite
	random   *mocks.MockRandom
	clock    *mocks.MockClock
	renderer *captureRenderer
	recorder *captureRecorder
	start    time.Time
	ctx      context.Context
}

func TestLoopSuite(t *testing.T) {
	suite.Run(t, new(LoopSuite))
}

func (s *LoopSuite) SetupTest() {
	// with an empty queue every spawn is a 2 in the first empty cell
	s.random = mocks.NewMockRandom()
	s.start = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.clock = mocks.NewMockClock(s.start)
	s.clock.Step = time.Second
	s.renderer = &captureRenderer{}
	s.recorder = &captureRecorder{}
	s.ctx = context.Background()
}

func (s *LoopSuite) newEngine(cfg grid.Config) *grid.Engine {
	engine, err := grid.New(cfg, s.random, testutil.NopLogger())
	s.Require().NoError(err)
	return engine
}

func (s *LoopSuite) newLoop(engine *grid.Engine, in *scriptedInput, opts Options) *Loop {
	return NewLoop(engine, in, s.renderer, s.recorder, s.clock, testutil.NopLogger(), opts)
}

func (s *LoopSuite) TestUnrecognizedSymbolsAreSkippedWithoutRendering() {
	engine := s.newEngine(grid.DefaultConfig())
	in := &scriptedInput{symbols: []rune{'x', '?', 'a', 'q'}}
	loop := s.newLoop(engine, in, Options{})

	s.Require().NoError(loop.Run(s.ctx))

	s.Len(s.renderer.views, 2)
	s.Equal(4, in.reads)
	s.Equal(model.SessionStateExit, loop.State())
	s.Equal(0, s.renderer.views[0].Score)
	s.Equal(4, s.renderer.views[1].Score)
}

func (s *LoopSuite) TestExitRecordsAbandonedGame() {
	engine := s.newEngine(grid.DefaultConfig())
	in := &scriptedInput{symbols: []rune{'a', 'q'}}
	loop := s.newLoop(engine, in, Options{})

	s.Require().NoError(loop.Run(s.ctx))

	s.Require().Len(loop.Results(), 1)
	result := loop.Results()[0]
	s.Equal(model.GameOutcomeAbandoned, result.Outcome)
	s.Equal(4, result.Score)
	s.Equal(4, result.MaxTile)
	s.Equal(1, result.Moves)
	s.Equal([]int{4, 2, 0, 0}, result.Cells[0])
	s.Equal(s.start, result.StartedAt)
	s.Equal(s.start.Add(time.Second), result.EndedAt)
	s.Equal(loop.Results(), s.recorder.results)
}

func (s *LoopSuite) TestExitWithoutMovesRecordsNothing() {
	engine := s.newEngine(grid.DefaultConfig())
	loop := s.newLoop(engine, &scriptedInput{symbols: []rune{'Q'}}, Options{})

	s.Require().NoError(loop.Run(s.ctx))

	s.Empty(loop.Results())
	s.Empty(s.recorder.results)
}

func (s *LoopSuite) TestEndOfInputActsAsExit() {
	engine := s.newEngine(grid.DefaultConfig())
	loop := s.newLoop(engine, &scriptedInput{symbols: []rune{'a'}}, Options{})

	s.Require().NoError(loop.Run(s.ctx))

	s.Equal(model.SessionStateExit, loop.State())
	s.Require().Len(loop.Results(), 1)
	s.Equal(model.GameOutcomeAbandoned, loop.Results()[0].Outcome)
}

func (s *LoopSuite) TestWinRestartsUnderRestartPolicy() {
	cfg := grid.DefaultConfig()
	cfg.WinValue = 4
	engine := s.newEngine(cfg)
	loop := s.newLoop(engine, &scriptedInput{symbols: []rune{'a', 'q'}}, Options{EndPolicy: model.EndPolicyRestart})

	s.Require().NoError(loop.Run(s.ctx))

	s.Require().Len(loop.Results(), 1)
	s.Equal(model.GameOutcomeWon, loop.Results()[0].Outcome)
	s.Equal(4, engine.HighScore())

	s.Equal([]model.SessionState{model.SessionStateGame, model.SessionStateGame}, s.renderer.states())
	fresh := s.renderer.views[1]
	s.Equal(0, fresh.Score)
	s.Equal(4, fresh.HighScore)
	s.Equal([]int{2, 2, 0, 0}, fresh.Cells[0])
}

func (s *LoopSuite) TestWinPausesUnderPausePolicy() {
	cfg := grid.DefaultConfig()
	cfg.WinValue = 4
	engine := s.newEngine(cfg)
	in := &scriptedInput{symbols: []rune{'a', 'd', 'r', 'q'}}
	loop := s.newLoop(engine, in, Options{EndPolicy: model.EndPolicyPause})

	s.Require().NoError(loop.Run(s.ctx))

	s.Equal([]model.SessionState{
		model.SessionStateGame,
		model.SessionStateWin,
		model.SessionStateWin,
		model.SessionStateGame,
	}, s.renderer.states())

	// moves are ignored while paused
	s.Equal(s.renderer.views[1].Cells, s.renderer.views[2].Cells)
	s.True(s.renderer.views[1].Won)

	s.Require().Len(loop.Results(), 1)
	s.Equal(model.GameOutcomeWon, loop.Results()[0].Outcome)
	s.Equal(4, s.renderer.views[3].HighScore)
}

func (s *LoopSuite) TestGameoverRestartsAndRecordsLoss() {
	engine := s.newEngine(grid.Config{Height: 1, Width: 2, WinValue: 2048, FourPercent: 10})
	loop := s.newLoop(engine, &scriptedInput{symbols: []rune{'a', 'q'}}, Options{})

	s.Require().NoError(loop.Run(s.ctx))

	s.Require().Len(loop.Results(), 1)
	result := loop.Results()[0]
	s.Equal(model.GameOutcomeLost, result.Outcome)
	s.Equal([][]int{{4, 2}}, result.Cells)
	s.Equal(4, result.Score)
	s.Equal(4, engine.HighScore())
}

func (s *LoopSuite) TestGameoverPausesUnderPausePolicy() {
	engine := s.newEngine(grid.Config{Height: 1, Width: 2, WinValue: 2048, FourPercent: 10})
	in := &scriptedInput{symbols: []rune{'a', 'w', 'q'}}
	loop := s.newLoop(engine, in, Options{EndPolicy: model.EndPolicyPause})

	s.Require().NoError(loop.Run(s.ctx))

	s.Equal([]model.SessionState{
		model.SessionStateGame,
		model.SessionStateGameover,
		model.SessionStateGameover,
	}, s.renderer.states())
	s.True(s.renderer.views[1].Gameover)
	// exit from a paused board does not record the game twice
	s.Len(loop.Results(), 1)
}

func (s *LoopSuite) TestRestartRecordsGameAndResets() {
	engine := s.newEngine(grid.DefaultConfig())
	loop := s.newLoop(engine, &scriptedInput{symbols: []rune{'a', 'r', 'q'}}, Options{})

	s.Require().NoError(loop.Run(s.ctx))

	s.Require().Len(loop.Results(), 1)
	s.Equal(model.GameOutcomeRestarted, loop.Results()[0].Outcome)
	s.Equal(4, engine.HighScore())
	s.Equal(0, s.renderer.views[2].Score)
}

func (s *LoopSuite) TestMaxGamesEndsSession() {
	engine := s.newEngine(grid.Config{Height: 1, Width: 2, WinValue: 2048, FourPercent: 10})
	in := &scriptedInput{symbols: []rune{'a', 'a', 'a'}}
	loop := s.newLoop(engine, in, Options{MaxGames: 1})

	s.Require().NoError(loop.Run(s.ctx))

	s.Len(loop.Results(), 1)
	s.Equal(1, in.reads)
	s.Equal(model.SessionStateExit, loop.State())
}

func (s *LoopSuite) TestRecorderErrorDoesNotStopSession() {
	s.recorder.err = errors.New("storage unavailable")
	engine := s.newEngine(grid.DefaultConfig())
	loop := s.newLoop(engine, &scriptedInput{symbols: []rune{'a', 'r', 'a', 'q'}}, Options{})

	s.Require().NoError(loop.Run(s.ctx))

	s.Len(loop.Results(), 2)
	s.Len(s.recorder.results, 2)
}

func (s *LoopSuite) TestNilRecorder() {
	engine := s.newEngine(grid.DefaultConfig())
	in := &scriptedInput{symbols: []rune{'a', 'q'}}
	loop := NewLoop(engine, in, s.renderer, nil, s.clock, testutil.NopLogger(), Options{})

	s.Require().NoError(loop.Run(s.ctx))
	s.Len(loop.Results(), 1)
}

func (s *LoopSuite) TestCancelledContextStopsRun() {
	engine := s.newEngine(grid.DefaultConfig())
	in := &scriptedInput{symbols: []rune{'a'}}
	loop := s.newLoop(engine, in, Options{})

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := loop.Run(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Zero(in.reads)
}

func (s *LoopSuite) TestInputErrorIsReturned() {
	readErr := errors.New("terminal gone")
	engine := s.newEngine(grid.DefaultConfig())
	loop := s.newLoop(engine, &scriptedInput{err: readErr}, Options{})

	err := loop.Run(s.ctx)
	s.ErrorIs(err, readErr)
}

func (s *LoopSuite) TestRenderErrorIsReturned() {
	drawErr := errors.New("screen closed")
	s.renderer.err = drawErr
	engine := s.newEngine(grid.DefaultConfig())
	in := &scriptedInput{symbols: []rune{'a'}}
	loop := s.newLoop(engine, in, Options{})

	err := loop.Run(s.ctx)
	s.ErrorIs(err, drawErr)
	s.Zero(in.reads)
}
