// Package input maps raw key symbols to game commands.
package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mcoot/game2048/internal/model"
)

// symbols is the canonical lowercase key for every command
var symbols = map[model.Command]rune{
	model.CommandUp:      'w',
	model.CommandLeft:    'a',
	model.CommandDown:    's',
	model.CommandRight:   'd',
	model.CommandRestart: 'r',
	model.CommandExit:    'q',
}

var commands = func() map[rune]model.Command {
	m := make(map[rune]model.Command, len(symbols))
	for cmd, sym := range symbols {
		m[sym] = cmd
	}
	return m
}()

// Classify maps a symbol to a command, ignoring case.
// Unrecognized symbols return false and should be discarded by the caller.
func Classify(symbol rune) (model.Command, bool) {
	cmd, ok := commands[unicode.ToLower(symbol)]
	return cmd, ok
}

// Symbol returns the lowercase key bound to a command
func Symbol(cmd model.Command) rune {
	return symbols[cmd]
}

// HelpText returns the two key-help lines shown under the board
func HelpText() (movement, control string) {
	key := func(cmd model.Command) string {
		return strings.ToUpper(string(Symbol(cmd)))
	}
	movement = fmt.Sprintf("(%s)Up (%s)Down (%s)Left (%s)Right",
		key(model.CommandUp), key(model.CommandDown), key(model.CommandLeft), key(model.CommandRight))
	control = fmt.Sprintf("(%s)Restart  (%s)Exit", key(model.CommandRestart), key(model.CommandExit))
	return movement, control
}
