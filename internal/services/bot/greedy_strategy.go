package bot

import (
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/grid"
)

// GreedyStrategy looks one move ahead: it takes the largest merge score,
// then the most empty cells, then the earliest direction in Directions order.
type GreedyStrategy struct{}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

// ChooseDirection picks the best legal direction
func (s *GreedyStrategy) ChooseDirection(board *model.Board) (model.Direction, bool) {
	var (
		best       model.Direction
		bestGain   = -1
		bestEmpty  = -1
		foundLegal bool
	)

	for _, dir := range model.Directions() {
		next, gained := grid.Transform(board, dir)
		if next.Equal(board) {
			continue
		}
		empty := next.EmptyCount()
		if gained > bestGain || (gained == bestGain && empty > bestEmpty) {
			best, bestGain, bestEmpty = dir, gained, empty
		}
		foundLegal = true
	}

	return best, foundLegal
}
