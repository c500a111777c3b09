package model

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Board is a fixed-size grid of tiles
type Board struct {
	Height int
	Width  int
	Cells  [][]int // Row-major: Cells[row][col], 0 means empty
}

// NewBoard creates an empty board of the given dimensions
func NewBoard(height, width int) *Board {
	cells := make([][]int, height)
	for i := range cells {
		cells[i] = make([]int, width)
	}
	return &Board{
		Height: height,
		Width:  width,
		Cells:  cells,
	}
}

// NewBoardFromRows builds a board from explicit rows. Rows must be non-empty,
// rectangular and hold only 0 or powers of two.
func NewBoardFromRows(rows [][]int) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	board := NewBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != board.Width {
			return nil, ErrInvalidDimensions
		}
		for c, v := range row {
			if !IsTileValue(v) {
				return nil, ErrInvalidTile
			}
			board.Cells[r][c] = v
		}
	}
	return board, nil
}

// IsTileValue reports whether v may appear in a cell: 0 or a power of two >= 2
func IsTileValue(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Get returns the tile at the given position, or 0 if empty or out of bounds
func (b *Board) Get(pos Position) int {
	if !b.IsValidPosition(pos) {
		return 0
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set places a tile at the given position
func (b *Board) Set(pos Position, value int) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = value
	}
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == 0
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Height && pos.Col >= 0 && pos.Col < b.Width
}

// IsFull returns true if all cells are filled
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	count := 0
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if b.Cells[row][col] == 0 {
				count++
			}
		}
	}
	return count
}

// EmptyPositions lists the empty cells in row-major order
func (b *Board) EmptyPositions() []Position {
	var empty []Position
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if b.Cells[row][col] == 0 {
				empty = append(empty, Position{Row: row, Col: col})
			}
		}
	}
	return empty
}

// GetRow returns a copy of the given row
func (b *Board) GetRow(row int) []int {
	if row < 0 || row >= b.Height {
		return nil
	}
	result := make([]int, b.Width)
	copy(result, b.Cells[row])
	return result
}

// GetCol returns a copy of the given column
func (b *Board) GetCol(col int) []int {
	if col < 0 || col >= b.Width {
		return nil
	}
	result := make([]int, b.Height)
	for row := 0; row < b.Height; row++ {
		result[row] = b.Cells[row][col]
	}
	return result
}

// Rows returns a deep copy of the cells
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.Height)
	for row := range rows {
		rows[row] = b.GetRow(row)
	}
	return rows
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	return &Board{
		Height: b.Height,
		Width:  b.Width,
		Cells:  b.Rows(),
	}
}

// Equal reports whether both boards have the same shape and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.Height != other.Height || b.Width != other.Width {
		return false
	}
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if b.Cells[row][col] != other.Cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Transpose returns a new Width x Height board with rows and columns swapped
func (b *Board) Transpose() *Board {
	t := NewBoard(b.Width, b.Height)
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			t.Cells[col][row] = b.Cells[row][col]
		}
	}
	return t
}

// Invert returns a new board with every row mirrored
func (b *Board) Invert() *Board {
	inv := NewBoard(b.Height, b.Width)
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			inv.Cells[row][b.Width-1-col] = b.Cells[row][col]
		}
	}
	return inv
}

// MaxTile returns the largest tile on the board, 0 for an empty board
func (b *Board) MaxTile() int {
	maxTile := 0
	for _, row := range b.Cells {
		for _, v := range row {
			if v > maxTile {
				maxTile = v
			}
		}
	}
	return maxTile
}
