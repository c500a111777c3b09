package model

// Direction is the way tiles slide on a move
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Directions returns every direction in a fixed order
func Directions() []Direction {
	return []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Command is a classified player action
type Command int

const (
	CommandUp Command = iota
	CommandDown
	CommandLeft
	CommandRight
	CommandRestart
	CommandExit
)

// Commands returns every command
func Commands() []Command {
	return []Command{CommandUp, CommandDown, CommandLeft, CommandRight, CommandRestart, CommandExit}
}

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandRestart:
		return "restart"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Direction returns the direction a movement command stands for.
// The second result is false for Restart and Exit.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CommandUp:
		return DirectionUp, true
	case CommandDown:
		return DirectionDown, true
	case CommandLeft:
		return DirectionLeft, true
	case CommandRight:
		return DirectionRight, true
	default:
		return 0, false
	}
}

// CommandFor returns the movement command for a direction
func CommandFor(d Direction) Command {
	switch d {
	case DirectionUp:
		return CommandUp
	case DirectionDown:
		return CommandDown
	case DirectionLeft:
		return CommandLeft
	default:
		return CommandRight
	}
}
