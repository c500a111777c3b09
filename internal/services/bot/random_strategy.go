package bot

import (
	"github.com/mcoot/game2048/internal/dependencies/random"
	"github.com/mcoot/game2048/internal/model"
)

// RandomStrategy picks uniformly among the legal directions
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseDirection picks a random legal direction
func (s *RandomStrategy) ChooseDirection(board *model.Board) (model.Direction, bool) {
	legal := legalDirections(board)
	if len(legal) == 0 {
		return 0, false
	}
	return legal[s.random.Intn(len(legal))], true
}
