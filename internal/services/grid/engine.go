package grid

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/game2048/internal/dependencies/random"
	"github.com/mcoot/game2048/internal/model"
)

const (
	// DefaultSize is the default board height and width
	DefaultSize = 4
	// DefaultWinValue is the tile that wins the game
	DefaultWinValue = 2048
	// DefaultFourPercent is the chance, in percent, that a spawned tile is a 4
	DefaultFourPercent = 10
)

// Config holds the engine settings fixed at construction
type Config struct {
	Height      int
	Width       int
	WinValue    int
	FourPercent int
}

// DefaultConfig returns a 4x4 board played to 2048
func DefaultConfig() Config {
	return Config{
		Height:      DefaultSize,
		Width:       DefaultSize,
		WinValue:    DefaultWinValue,
		FourPercent: DefaultFourPercent,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	// reset seeds two tiles, so a board needs at least two cells
	if c.Height < 1 || c.Width < 1 || c.Height*c.Width < 2 {
		return model.ErrInvalidDimensions
	}
	if c.WinValue < 2 {
		return model.ErrInvalidWinValue
	}
	if c.FourPercent < 0 || c.FourPercent > 100 {
		return model.ErrInvalidSpawnChance
	}
	return nil
}

// Engine owns the board and score and applies moves to them
type Engine struct {
	cfg       Config
	board     *model.Board
	score     int
	highScore int
	moves     int
	random    random.Random
	logger    *slog.Logger
}

// New creates an Engine and starts the first game
func New(cfg Config, rnd random.Random, logger *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		random: rnd,
		logger: logger.With(slog.String("component", "grid-engine")),
	}
	e.Reset()
	return e, nil
}

// Reset snapshots the score into the high score, clears the board and spawns two tiles
func (e *Engine) Reset() {
	if e.score > e.highScore {
		e.highScore = e.score
	}
	e.score = 0
	e.moves = 0
	e.board = model.NewBoard(e.cfg.Height, e.cfg.Width)
	e.Spawn()
	e.Spawn()

	e.logger.Debug("game reset",
		slog.Int("high_score", e.highScore),
		slog.Int("height", e.cfg.Height),
		slog.Int("width", e.cfg.Width),
	)
}

// Move slides the board in dir. If any cell changes the new board is kept,
// the merge score is added, a tile is spawned and true is returned.
// Otherwise nothing changes and false is returned.
func (e *Engine) Move(dir model.Direction) bool {
	next, gained := Transform(e.board, dir)
	if next.Equal(e.board) {
		return false
	}

	e.board = next
	e.score += gained
	e.moves++
	e.Spawn()

	e.logger.Debug("move applied",
		slog.String("direction", dir.String()),
		slog.Int("gained", gained),
		slog.Int("score", e.score),
		slog.Int("moves", e.moves),
	)
	return true
}

// MoveIsPossible reports whether Move(dir) would succeed, without changing state
func (e *Engine) MoveIsPossible(dir model.Direction) bool {
	return CanSlide(e.board, dir)
}

// IsWin reports whether any tile has reached the win value
func (e *Engine) IsWin() bool {
	return e.board.MaxTile() >= e.cfg.WinValue
}

// IsGameover reports whether no direction can move
func (e *Engine) IsGameover() bool {
	for _, dir := range model.Directions() {
		if e.MoveIsPossible(dir) {
			return false
		}
	}
	return true
}

// Spawn places a 2 (or a 4, FourPercent of the time) into a uniformly chosen empty cell.
// It panics if the board is full; callers only spawn after a reset or a legal move.
func (e *Engine) Spawn() {
	value := 2
	if e.random.Intn(100) >= 100-e.cfg.FourPercent {
		value = 4
	}

	empty := e.board.EmptyPositions()
	if len(empty) == 0 {
		panic(fmt.Errorf("spawn on %dx%d board: %w", e.board.Height, e.board.Width, model.ErrNoEmptyCell))
	}
	e.board.Set(empty[e.random.Intn(len(empty))], value)
}

// SetBoard replaces the board, keeping score and high score.
// The board must match the configured dimensions and hold valid tiles.
func (e *Engine) SetBoard(b *model.Board) error {
	if b.Height != e.cfg.Height || b.Width != e.cfg.Width {
		return model.ErrBoardMismatch
	}
	if _, err := model.NewBoardFromRows(b.Cells); err != nil {
		return err
	}
	e.board = b.Clone()
	return nil
}

// Board returns a copy of the current board
func (e *Engine) Board() *model.Board {
	return e.board.Clone()
}

// Score returns the score of the current game
func (e *Engine) Score() int {
	return e.score
}

// HighScore returns the best score of any game finished by a reset
func (e *Engine) HighScore() int {
	return e.highScore
}

// WinValue returns the configured win tile
func (e *Engine) WinValue() int {
	return e.cfg.WinValue
}

// Moves returns the number of legal moves since the last reset
func (e *Engine) Moves() int {
	return e.moves
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// View returns a snapshot for renderers. State is left for the session to fill.
func (e *Engine) View() model.GameView {
	return model.GameView{
		Cells:     e.board.Rows(),
		Score:     e.score,
		HighScore: e.highScore,
		WinValue:  e.cfg.WinValue,
		Moves:     e.moves,
		Won:       e.IsWin(),
		Gameover:  e.IsGameover(),
	}
}

// EngineInterface is the engine surface used by the session loop and bots
type EngineInterface interface {
	Reset()
	Move(dir model.Direction) bool
	MoveIsPossible(dir model.Direction) bool
	IsWin() bool
	IsGameover() bool
	Board() *model.Board
	Score() int
	HighScore() int
	Moves() int
	View() model.GameView
}

var _ EngineInterface = (*Engine)(nil)
