package bot

import (
	"context"
	"log/slog"

	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/grid"
	"github.com/mcoot/game2048/internal/services/input"
)

// Player feeds a session with the moves a Strategy picks for the engine's board.
// It asks for a restart when the board is won or stuck, and for exit once
// its move budget is spent.
type Player struct {
	engine   grid.EngineInterface
	strategy Strategy
	maxMoves int
	issued   int
	logger   *slog.Logger
}

// NewPlayer creates a Player. maxMoves <= 0 means no budget.
func NewPlayer(engine grid.EngineInterface, strategy Strategy, maxMoves int, logger *slog.Logger) *Player {
	return &Player{
		engine:   engine,
		strategy: strategy,
		maxMoves: maxMoves,
		logger:   logger.With(slog.String("component", "bot-player")),
	}
}

// NextSymbol returns the key for the bot's next command
func (p *Player) NextSymbol(ctx context.Context) (rune, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if p.maxMoves > 0 && p.issued >= p.maxMoves {
		p.logger.Debug("move budget spent", slog.Int("moves", p.issued))
		return input.Symbol(model.CommandExit), nil
	}

	// a board that starts out won is still played, so the game ends through a move
	if p.engine.IsWin() && p.engine.Moves() > 0 {
		return input.Symbol(model.CommandRestart), nil
	}

	dir, ok := p.strategy.ChooseDirection(p.engine.Board())
	if !ok {
		return input.Symbol(model.CommandRestart), nil
	}

	p.issued++
	return input.Symbol(model.CommandFor(dir)), nil
}

// Issued returns the number of moves the player has sent
func (p *Player) Issued() int {
	return p.issued
}
