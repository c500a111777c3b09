package bot

import (
	"fmt"

	"github.com/mcoot/game2048/internal/dependencies/random"
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/grid"
)

// Strategy defines how a bot chooses its next move
type Strategy interface {
	// ChooseDirection picks a legal direction for board.
	// The second result is false when no direction can move.
	ChooseDirection(board *model.Board) (model.Direction, bool)
}

// NewStrategy returns the strategy registered under name
func NewStrategy(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case model.BotStrategyRandom:
		return NewRandomStrategy(rnd), nil
	case model.BotStrategyGreedy:
		return NewGreedyStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
}

// legalDirections returns every direction that changes board, in Directions order
func legalDirections(board *model.Board) []model.Direction {
	var legal []model.Direction
	for _, dir := range model.Directions() {
		if grid.CanSlide(board, dir) {
			legal = append(legal, dir)
		}
	}
	return legal
}
