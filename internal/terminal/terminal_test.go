package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/game2048/internal/model"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	scr, err := Wrap(sim)
	require.NoError(t, err)
	sim.SetSize(40, 12)
	t.Cleanup(scr.Close)
	return scr, sim
}

// screenLine reads row y of the simulation screen with trailing spaces trimmed
func screenLine(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func timeoutCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestScreenRender(t *testing.T) {
	scr, sim := newSimScreen(t)

	err := scr.Render(model.GameView{
		Cells:     [][]int{{2, 0}, {0, 1024}},
		Score:     16,
		HighScore: 32,
	})
	require.NoError(t, err)

	assert.Equal(t, "SCORE:16", screenLine(sim, 0))
	assert.Equal(t, "HIGHSCORE:32", screenLine(sim, 1))
	assert.Equal(t, "+-------+-------+", screenLine(sim, 2))
	assert.Equal(t, "|   2   |       |", screenLine(sim, 3))
	assert.Equal(t, "|       | 1024  |", screenLine(sim, 5))
	assert.Equal(t, "(W)Up (S)Down (A)Left (D)Right", screenLine(sim, 7))
	assert.Equal(t, "(R)Restart  (Q)Exit", screenLine(sim, 8))
}

func TestScreenRenderClearsPreviousFrame(t *testing.T) {
	scr, sim := newSimScreen(t)

	require.NoError(t, scr.Render(model.GameView{Cells: [][]int{{2}}, HighScore: 8}))
	require.NoError(t, scr.Render(model.GameView{Cells: [][]int{{2}}, Won: true}))

	assert.Equal(t, "SCORE:0", screenLine(sim, 0))
	assert.Equal(t, "+-------+", screenLine(sim, 1))
	assert.Equal(t, "You win", screenLine(sim, 4))
	assert.Empty(t, screenLine(sim, 6))
}

func TestScreenKeys(t *testing.T) {
	scr, sim := newSimScreen(t)
	ctx := timeoutCtx(t)

	keys := []struct {
		key  tcell.Key
		r    rune
		want rune
	}{
		{tcell.KeyRune, 'W', 'W'},
		{tcell.KeyRune, 'x', 'x'},
		{tcell.KeyUp, 0, 'w'},
		{tcell.KeyDown, 0, 's'},
		{tcell.KeyLeft, 0, 'a'},
		{tcell.KeyRight, 0, 'd'},
		{tcell.KeyEscape, 0, 'q'},
		{tcell.KeyCtrlC, 0, 'q'},
	}

	for _, k := range keys {
		sim.InjectKey(k.key, k.r, tcell.ModNone)
		got, err := scr.NextSymbol(ctx)
		require.NoError(t, err)
		assert.Equal(t, k.want, got)
	}
}

func TestScreenSkipsUnmappedKeysAndResizes(t *testing.T) {
	scr, sim := newSimScreen(t)
	ctx := timeoutCtx(t)

	require.NoError(t, scr.Render(model.GameView{Cells: [][]int{{4}}}))
	sim.InjectKey(tcell.KeyF1, 0, tcell.ModNone)
	require.NoError(t, sim.PostEvent(tcell.NewEventResize(40, 12)))
	sim.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)

	got, err := scr.NextSymbol(ctx)
	require.NoError(t, err)
	assert.Equal(t, 'd', got)
	assert.Equal(t, "|   4   |", screenLine(sim, 2))
}

func TestScreenNextSymbolHonoursContext(t *testing.T) {
	scr, _ := newSimScreen(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scr.NextSymbol(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScreenCloseEndsInput(t *testing.T) {
	scr, _ := newSimScreen(t)
	scr.Close()
	scr.Close()

	_, err := scr.NextSymbol(timeoutCtx(t))
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamInputSkipsWhitespace(t *testing.T) {
	in := NewStreamInput(strings.NewReader("w \n a\td\n"))
	ctx := context.Background()

	var got []rune
	for {
		r, err := in.NextSymbol(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, r)
	}
	assert.Equal(t, []rune{'w', 'a', 'd'}, got)
}

func TestStreamInputHonoursContext(t *testing.T) {
	in := NewStreamInput(strings.NewReader("w"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.NextSymbol(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreamRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamRenderer(&buf)

	require.NoError(t, r.Render(model.GameView{Cells: [][]int{{2, 4}}, Score: 4}))

	assert.Equal(t, strings.Join([]string{
		"SCORE:4",
		"+-------+-------+",
		"|   2   |   4   |",
		"+-------+-------+",
		"(W)Up (S)Down (A)Left (D)Right",
		"(R)Restart  (Q)Exit",
		"",
		"",
	}, "\n"), buf.String())
}
