package grid

import (
	"fmt"

	"github.com/mcoot/game2048/internal/model"
)

// CompressRow moves every tile to the front of the row, keeping their order,
// and pads the rest with zeros.
func CompressRow(row []int) []int {
	out := make([]int, 0, len(row))
	for _, v := range row {
		if v != 0 {
			out = append(out, v)
		}
	}
	for len(out) < len(row) {
		out = append(out, 0)
	}
	return out
}

// MergeRow scans a compressed row left to right and merges equal neighbours.
// A merged pair becomes (0, 2v) and the scan resumes after the pair, so a tile
// merges at most once and results never merge again in the same pass.
// It returns the new row and the score gained (the sum of merged values).
func MergeRow(row []int) ([]int, int) {
	out := make([]int, 0, len(row))
	gained := 0
	pair := false
	for i := range row {
		if pair {
			out = append(out, 2*row[i])
			gained += 2 * row[i]
			pair = false
			continue
		}
		if i+1 < len(row) && row[i] != 0 && row[i] == row[i+1] {
			pair = true
			out = append(out, 0)
		} else {
			out = append(out, row[i])
		}
	}
	if len(out) != len(row) {
		panic(fmt.Errorf("merge row of length %d produced %d cells: %w", len(row), len(out), model.ErrRowLengthMismatch))
	}
	return out, gained
}

// SlideRowLeft applies compress, merge, compress to a single row
func SlideRowLeft(row []int) ([]int, int) {
	merged, gained := MergeRow(CompressRow(row))
	return CompressRow(merged), gained
}

// Transform returns the board that results from sliding b in the given
// direction together with the merge score produced. b is not modified.
// Right, Up and Down are derived from Left by mirroring and transposing.
func Transform(b *model.Board, dir model.Direction) (*model.Board, int) {
	switch dir {
	case model.DirectionLeft:
		return slideLeft(b)
	case model.DirectionRight:
		out, gained := slideLeft(b.Invert())
		return out.Invert(), gained
	case model.DirectionUp:
		out, gained := slideLeft(b.Transpose())
		return out.Transpose(), gained
	case model.DirectionDown:
		out, gained := Transform(b.Transpose(), model.DirectionRight)
		return out.Transpose(), gained
	default:
		return b.Clone(), 0
	}
}

// CanSlide reports whether sliding b in dir would change any cell
func CanSlide(b *model.Board, dir model.Direction) bool {
	out, _ := Transform(b, dir)
	return !out.Equal(b)
}

func slideLeft(b *model.Board) (*model.Board, int) {
	out := model.NewBoard(b.Height, b.Width)
	total := 0
	for row := 0; row < b.Height; row++ {
		slid, gained := SlideRowLeft(b.Cells[row])
		copy(out.Cells[row], slid)
		total += gained
	}
	return out, total
}
