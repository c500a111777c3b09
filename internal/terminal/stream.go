package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"unicode"

	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/render"
)

// StreamInput reads symbols from a byte stream, skipping whitespace.
// A read already in progress is not interrupted by ctx.
type StreamInput struct {
	r *bufio.Reader
}

// NewStreamInput creates a StreamInput over r
func NewStreamInput(r io.Reader) *StreamInput {
	return &StreamInput{r: bufio.NewReader(r)}
}

// NextSymbol returns the next non-space rune, or io.EOF at end of stream
func (in *StreamInput) NextSymbol(ctx context.Context) (rune, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		r, _, err := in.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

// StreamRenderer writes each frame as text followed by a blank line
type StreamRenderer struct {
	w io.Writer
}

// NewStreamRenderer creates a StreamRenderer over w
func NewStreamRenderer(w io.Writer) *StreamRenderer {
	return &StreamRenderer{w: w}
}

// Render writes the frame for view
func (r *StreamRenderer) Render(view model.GameView) error {
	_, err := fmt.Fprintf(r.w, "%s\n", render.Frame(view))
	return err
}
