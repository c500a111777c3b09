// Package render lays out a game view as text lines shared by every renderer.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/input"
)

const (
	// CellWidth is the number of columns inside each cell
	CellWidth = 7

	WinMessage      = "You win"
	GameoverMessage = "Game over"
)

// Lines returns the frame for view, top to bottom:
// score, high score when set, the grid, then a status or help line and the control help.
func Lines(view model.GameView) []string {
	lines := []string{fmt.Sprintf("SCORE:%d", view.Score)}
	if view.HighScore != 0 {
		lines = append(lines, fmt.Sprintf("HIGHSCORE:%d", view.HighScore))
	}

	width := 0
	if len(view.Cells) > 0 {
		width = len(view.Cells[0])
	}
	separator := Separator(width)

	for _, row := range view.Cells {
		lines = append(lines, separator, Row(row))
	}
	lines = append(lines, separator)

	movement, control := input.HelpText()
	switch {
	case view.Won:
		lines = append(lines, WinMessage)
	case view.Gameover:
		lines = append(lines, GameoverMessage)
	default:
		lines = append(lines, movement)
	}
	return append(lines, control)
}

// Frame joins Lines with newlines, ending with a newline
func Frame(view model.GameView) string {
	return strings.Join(Lines(view), "\n") + "\n"
}

// Separator returns the horizontal rule for a grid width cells wide
func Separator(width int) string {
	var b strings.Builder
	for range width {
		b.WriteByte('+')
		b.WriteString(strings.Repeat("-", CellWidth))
	}
	b.WriteByte('+')
	return b.String()
}

// Row returns one grid row, each value centred in its cell and empty cells blank
func Row(row []int) string {
	var b strings.Builder
	for _, v := range row {
		b.WriteByte('|')
		if v == 0 {
			b.WriteString(strings.Repeat(" ", CellWidth))
			continue
		}
		b.WriteString(center(strconv.Itoa(v), CellWidth))
	}
	b.WriteByte('|')
	return b.String()
}

// center pads s to width, putting the odd space on the right
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
