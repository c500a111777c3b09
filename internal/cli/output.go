package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/render"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SessionSummary:
		o.printSessionSummary(v)
	case []GameSummary:
		o.printGameList(v)
	case GameSummary:
		o.printGame(v)
	case VersionInfo:
		fmt.Fprintf(o.w, "game2048 %s\n", v.Version)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameSummary describes one finished game
type GameSummary struct {
	ID         string    `json:"id,omitempty"`
	Outcome    string    `json:"outcome"`
	Score      int       `json:"score"`
	MaxTile    int       `json:"max_tile"`
	Moves      int       `json:"moves"`
	WinValue   int       `json:"win_value"`
	DurationMS int64     `json:"duration_ms"`
	EndedAt    time.Time `json:"ended_at"`
	Board      [][]int   `json:"board,omitempty"`
}

// SessionSummary describes a play or autoplay session after it exits
type SessionSummary struct {
	Strategy  string        `json:"strategy,omitempty"`
	Games     []GameSummary `json:"games"`
	HighScore int           `json:"high_score"`
	BestTile  int           `json:"best_tile"`
	Wins      int           `json:"wins"`
}

// VersionInfo is the version command's output
type VersionInfo struct {
	Version string `json:"version"`
}

func newGameSummary(r model.GameResult, withBoard bool) GameSummary {
	g := GameSummary{
		Outcome:    string(r.Outcome),
		Score:      r.Score,
		MaxTile:    r.MaxTile,
		Moves:      r.Moves,
		WinValue:   r.WinValue,
		DurationMS: r.Duration().Milliseconds(),
		EndedAt:    r.EndedAt,
	}
	if withBoard {
		g.Board = r.Cells
	}
	return g
}

func newRecordSummary(rec *model.GameRecord, withBoard bool) GameSummary {
	g := newGameSummary(rec.GameResult, withBoard)
	g.ID = string(rec.ID)
	return g
}

func newSessionSummary(strategy string, highScore int, results []model.GameResult) SessionSummary {
	s := SessionSummary{
		Strategy:  strategy,
		Games:     make([]GameSummary, 0, len(results)),
		HighScore: highScore,
	}
	for _, r := range results {
		s.Games = append(s.Games, newGameSummary(r, false))
		s.BestTile = max(s.BestTile, r.MaxTile)
		if r.Outcome == model.GameOutcomeWon {
			s.Wins++
		}
	}
	return s
}

func (o *Output) printSessionSummary(s SessionSummary) {
	if s.Strategy != "" {
		fmt.Fprintf(o.w, "Strategy: %s\n", model.BotStrategyDisplayName(s.Strategy))
	}
	fmt.Fprintf(o.w, "Games: %d (won %d)\n", len(s.Games), s.Wins)
	fmt.Fprintf(o.w, "High score: %d\n", s.HighScore)
	fmt.Fprintf(o.w, "Best tile: %d\n", s.BestTile)
	for i, g := range s.Games {
		fmt.Fprintf(o.w, "  %d. %-9s score %-6d tile %-5d moves %d\n", i+1, g.Outcome, g.Score, g.MaxTile, g.Moves)
	}
}

func (o *Output) printGameList(games []GameSummary) {
	if len(games) == 0 {
		fmt.Fprintln(o.w, "No games recorded")
		return
	}
	fmt.Fprintf(o.w, "%-12s %-9s %7s %6s %6s  %s\n", "ID", "OUTCOME", "SCORE", "TILE", "MOVES", "ENDED")
	for _, g := range games {
		fmt.Fprintf(o.w, "%-12s %-9s %7d %6d %6d  %s\n",
			g.ID, g.Outcome, g.Score, g.MaxTile, g.Moves, g.EndedAt.Local().Format(time.DateTime))
	}
}

func (o *Output) printGame(g GameSummary) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Outcome: %s\n", g.Outcome)
	fmt.Fprintf(o.w, "Score: %d\n", g.Score)
	fmt.Fprintf(o.w, "Max tile: %d (target %d)\n", g.MaxTile, g.WinValue)
	fmt.Fprintf(o.w, "Moves: %d\n", g.Moves)
	fmt.Fprintf(o.w, "Duration: %s\n", (time.Duration(g.DurationMS) * time.Millisecond).String())
	fmt.Fprintf(o.w, "Ended: %s\n", g.EndedAt.Local().Format(time.DateTime))

	if len(g.Board) > 0 {
		fmt.Fprintln(o.w)
		o.printBoard(g.Board)
	}
}

func (o *Output) printBoard(cells [][]int) {
	separator := render.Separator(len(cells[0]))
	for _, row := range cells {
		fmt.Fprintln(o.w, separator)
		fmt.Fprintln(o.w, render.Row(row))
	}
	fmt.Fprintln(o.w, separator)
}
