package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/game2048/internal/dependencies/mocks"
	"github.com/mcoot/game2048/internal/dependencies/random"
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/bot"
	"github.com/mcoot/game2048/internal/services/grid"
	"github.com/mcoot/game2048/internal/services/session"
	"github.com/mcoot/game2048/internal/testutil"
)

type PlayerSuite struct {
	suite.Suite
	random *mocks.MockRandom
	ctx    context.Context
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func (s *PlayerSuite) SetupTest() {
	// with an empty queue every spawn is a 2 in the first empty cell
	s.random = mocks.NewMockRandom()
	s.ctx = context.Background()
}

func (s *PlayerSuite) newEngine(cfg grid.Config) *grid.Engine {
	engine, err := grid.New(cfg, s.random, testutil.NopLogger())
	s.Require().NoError(err)
	return engine
}

func (s *PlayerSuite) TestSendsStrategyMove() {
	engine := s.newEngine(grid.DefaultConfig())
	player := bot.NewPlayer(engine, bot.NewGreedyStrategy(), 0, testutil.NopLogger())

	symbol, err := player.NextSymbol(s.ctx)
	s.Require().NoError(err)
	s.Equal('a', symbol)
	s.Equal(1, player.Issued())
}

func (s *PlayerSuite) TestExitsWhenBudgetSpent() {
	engine := s.newEngine(grid.DefaultConfig())
	player := bot.NewPlayer(engine, bot.NewGreedyStrategy(), 1, testutil.NopLogger())

	first, err := player.NextSymbol(s.ctx)
	s.Require().NoError(err)
	s.Equal('a', first)

	second, err := player.NextSymbol(s.ctx)
	s.Require().NoError(err)
	s.Equal('q', second)
	s.Equal(1, player.Issued())
}

func (s *PlayerSuite) TestRestartsStuckBoard() {
	engine := s.newEngine(grid.Config{Height: 1, Width: 2, WinValue: 2048, FourPercent: 10})
	s.Require().True(engine.Move(model.DirectionLeft)) // [4 2]
	player := bot.NewPlayer(engine, bot.NewGreedyStrategy(), 0, testutil.NopLogger())

	symbol, err := player.NextSymbol(s.ctx)
	s.Require().NoError(err)
	s.Equal('r', symbol)
	s.Zero(player.Issued())
}

func (s *PlayerSuite) TestRestartsWonBoard() {
	cfg := grid.DefaultConfig()
	cfg.WinValue = 4
	engine := s.newEngine(cfg)
	s.Require().True(engine.Move(model.DirectionLeft))
	player := bot.NewPlayer(engine, bot.NewGreedyStrategy(), 0, testutil.NopLogger())

	symbol, err := player.NextSymbol(s.ctx)
	s.Require().NoError(err)
	s.Equal('r', symbol)
}

func (s *PlayerSuite) TestPlaysBoardThatStartsWon() {
	cfg := grid.DefaultConfig()
	cfg.WinValue = 2
	engine := s.newEngine(cfg)
	player := bot.NewPlayer(engine, bot.NewGreedyStrategy(), 0, testutil.NopLogger())

	symbol, err := player.NextSymbol(s.ctx)
	s.Require().NoError(err)
	s.Equal('a', symbol)
}

func (s *PlayerSuite) TestHonoursContext() {
	engine := s.newEngine(grid.DefaultConfig())
	player := bot.NewPlayer(engine, bot.NewGreedyStrategy(), 0, testutil.NopLogger())

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := player.NextSymbol(ctx)
	s.ErrorIs(err, context.Canceled)
}

type nopRenderer struct{}

func (nopRenderer) Render(model.GameView) error { return nil }

func (s *PlayerSuite) TestDrivesSessionToCompletion() {
	for _, name := range model.ValidBotStrategies() {
		rnd := random.NewSeeded(42)
		engine, err := grid.New(grid.DefaultConfig(), rnd, testutil.NopLogger())
		s.Require().NoError(err)

		strategy, err := bot.NewStrategy(name, rnd)
		s.Require().NoError(err)
		player := bot.NewPlayer(engine, strategy, 0, testutil.NopLogger())

		clk := mocks.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		loop := session.NewLoop(engine, player, nopRenderer{}, nil, clk, testutil.NopLogger(), session.Options{MaxGames: 3})

		s.Require().NoError(loop.Run(s.ctx), name)
		s.Require().Len(loop.Results(), 3, name)
		for _, result := range loop.Results() {
			s.Contains([]model.GameOutcome{model.GameOutcomeWon, model.GameOutcomeLost}, result.Outcome, name)
			s.Positive(result.Moves, name)
			s.GreaterOrEqual(result.MaxTile, 4, name)
		}
	}
}
