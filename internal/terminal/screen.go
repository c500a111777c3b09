// Package terminal connects a session to a terminal, either full screen
// through tcell or as a plain byte stream.
package terminal

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/render"
	"github.com/mcoot/game2048/internal/services/input"
)

// Screen is a full-screen renderer and key input backed by tcell
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once

	mu      sync.Mutex
	last    model.GameView
	hasLast bool
}

// NewScreen opens the controlling terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(s)
}

// Wrap initialises s and starts reading its events.
// Close must be called to restore the terminal.
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	s.Clear()

	scr := &Screen{
		screen: s,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
	}
	go scr.poll()
	return scr, nil
}

func (s *Screen) poll() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// NextSymbol blocks until a key maps to a symbol.
// Arrow keys map to the movement letters, Esc and Ctrl-C to exit.
// Resizes redraw the last frame. Returns io.EOF once the screen is closed.
func (s *Screen) NextSymbol(ctx context.Context) (rune, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return 0, io.EOF
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.redraw()
			case *tcell.EventKey:
				if r, ok := keySymbol(e); ok {
					return r, nil
				}
			}
		}
	}
}

func keySymbol(e *tcell.EventKey) (rune, bool) {
	switch e.Key() {
	case tcell.KeyRune:
		return e.Rune(), true
	case tcell.KeyUp:
		return input.Symbol(model.CommandUp), true
	case tcell.KeyDown:
		return input.Symbol(model.CommandDown), true
	case tcell.KeyLeft:
		return input.Symbol(model.CommandLeft), true
	case tcell.KeyRight:
		return input.Symbol(model.CommandRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Symbol(model.CommandExit), true
	default:
		return 0, false
	}
}

// Render draws view and keeps it for redraws after a resize
func (s *Screen) Render(view model.GameView) error {
	s.mu.Lock()
	s.last = view
	s.hasLast = true
	s.mu.Unlock()

	s.draw(view)
	return nil
}

func (s *Screen) redraw() {
	s.mu.Lock()
	view, ok := s.last, s.hasLast
	s.mu.Unlock()

	s.screen.Sync()
	if ok {
		s.draw(view)
	}
}

var (
	textStyle   = tcell.StyleDefault
	scoreStyle  = tcell.StyleDefault.Bold(true)
	gridStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	winStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	tileColours = []tcell.Color{
		tcell.ColorWhite, tcell.ColorLightYellow, tcell.ColorYellow, tcell.ColorOrange,
		tcell.ColorDarkOrange, tcell.ColorOrangeRed, tcell.ColorRed, tcell.ColorGold,
		tcell.ColorLightGreen, tcell.ColorGreen, tcell.ColorAqua, tcell.ColorFuchsia,
	}
)

// tileStyle colours a tile by its exponent
func tileStyle(value int) tcell.Style {
	exp := 0
	for v := value; v > 2; v >>= 1 {
		exp++
	}
	if exp >= len(tileColours) {
		exp = len(tileColours) - 1
	}
	return tcell.StyleDefault.Foreground(tileColours[exp]).Bold(true)
}

func (s *Screen) draw(view model.GameView) {
	s.screen.Clear()

	lines := render.Lines(view)
	row := 0
	for y, line := range lines {
		switch {
		case strings.HasPrefix(line, "SCORE:"), strings.HasPrefix(line, "HIGHSCORE:"):
			drawText(s.screen, 0, y, line, scoreStyle)
		case strings.HasPrefix(line, "+"):
			drawText(s.screen, 0, y, line, gridStyle)
		case strings.HasPrefix(line, "|"):
			drawText(s.screen, 0, y, line, gridStyle)
			if row < len(view.Cells) {
				s.drawTiles(y, view.Cells[row])
			}
			row++
		case line == render.WinMessage:
			drawText(s.screen, 0, y, line, winStyle)
		case line == render.GameoverMessage:
			drawText(s.screen, 0, y, line, overStyle)
		default:
			drawText(s.screen, 0, y, line, textStyle)
		}
	}

	s.screen.Show()
}

// drawTiles recolours the values of one grid row drawn at y
func (s *Screen) drawTiles(y int, cells []int) {
	segment := render.Row(cells)
	for col, v := range cells {
		if v == 0 {
			continue
		}
		x := 1 + col*(render.CellWidth+1)
		drawText(s.screen, x, y, segment[x:x+render.CellWidth], tileStyle(v))
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}
