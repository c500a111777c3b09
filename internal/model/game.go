package model

import "time"

// GameID uniquely identifies a recorded game
type GameID string

// SessionState is the phase of an interactive session
type SessionState string

const (
	SessionStateInit     SessionState = "init"     // About to reset the engine
	SessionStateGame     SessionState = "game"     // Accepting moves
	SessionStateWin      SessionState = "win"      // Paused on a winning board
	SessionStateGameover SessionState = "gameover" // Paused on a board with no moves
	SessionStateExit     SessionState = "exit"     // Session finished
)

// EndPolicy decides what happens when a move wins or ends the game
type EndPolicy string

const (
	EndPolicyRestart EndPolicy = "restart" // Start a new game immediately
	EndPolicyPause   EndPolicy = "pause"   // Stay on the final board until Restart or Exit
)

// ParseEndPolicy validates an end policy name
func ParseEndPolicy(s string) (EndPolicy, error) {
	switch EndPolicy(s) {
	case EndPolicyRestart, EndPolicyPause:
		return EndPolicy(s), nil
	default:
		return "", ErrUnknownEndPolicy
	}
}

// GameOutcome describes how a game left play
type GameOutcome string

const (
	GameOutcomeWon       GameOutcome = "won"       // Reached the win value
	GameOutcomeLost      GameOutcome = "lost"      // No moves left
	GameOutcomeRestarted GameOutcome = "restarted" // Player asked for a new game
	GameOutcomeAbandoned GameOutcome = "abandoned" // Session exited mid-game
)

// GameView is the read-only state handed to renderers
type GameView struct {
	Cells     [][]int
	Score     int
	HighScore int // 0 means not set yet
	WinValue  int
	Moves     int
	Won       bool
	Gameover  bool
	State     SessionState
}

// GameResult is a finished game as reported by the session loop
type GameResult struct {
	Outcome   GameOutcome
	Cells     [][]int
	Score     int
	MaxTile   int
	Moves     int
	WinValue  int
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the game was played
func (r GameResult) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// GameRecord is a stored GameResult
type GameRecord struct {
	ID GameID
	GameResult
}
