// Package session drives a grid engine from player input.
package session

import (
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/grid"
)

// Transition is the result of a single Step
type Transition struct {
	From    model.SessionState
	To      model.SessionState
	Command model.Command
	// Moved is true when the command was a legal move
	Moved bool
	// Ended is set when the game in play left play on this step
	Ended model.GameOutcome
}

// Machine is the session state machine. It owns no state of its own;
// the current SessionState is passed in and returned by Step.
type Machine struct {
	engine grid.EngineInterface
	policy model.EndPolicy
}

// NewMachine creates a Machine driving engine.
// An empty policy behaves as EndPolicyRestart.
func NewMachine(engine grid.EngineInterface, policy model.EndPolicy) *Machine {
	if policy == "" {
		policy = model.EndPolicyRestart
	}
	return &Machine{engine: engine, policy: policy}
}

// Policy returns the end policy in use
func (m *Machine) Policy() model.EndPolicy {
	return m.policy
}

// Step applies cmd in state and returns the transition taken.
// Init ignores cmd: it resets the engine and moves to Game.
func (m *Machine) Step(state model.SessionState, cmd model.Command) Transition {
	t := Transition{From: state, To: state, Command: cmd}

	switch state {
	case model.SessionStateInit:
		m.engine.Reset()
		t.To = model.SessionStateGame

	case model.SessionStateGame:
		switch cmd {
		case model.CommandRestart:
			t.To = model.SessionStateInit
			t.Ended = model.GameOutcomeRestarted
		case model.CommandExit:
			t.To = model.SessionStateExit
			t.Ended = model.GameOutcomeAbandoned
		default:
			dir, ok := cmd.Direction()
			if !ok || !m.engine.Move(dir) {
				return t
			}
			t.Moved = true
			switch {
			case m.engine.IsWin():
				t.Ended = model.GameOutcomeWon
				t.To = m.endState(model.SessionStateWin)
			case m.engine.IsGameover():
				t.Ended = model.GameOutcomeLost
				t.To = m.endState(model.SessionStateGameover)
			}
		}

	case model.SessionStateWin, model.SessionStateGameover:
		switch cmd {
		case model.CommandRestart:
			t.To = model.SessionStateInit
		case model.CommandExit:
			t.To = model.SessionStateExit
		}

	case model.SessionStateExit:
	}

	return t
}

func (m *Machine) endState(paused model.SessionState) model.SessionState {
	if m.policy == model.EndPolicyPause {
		return paused
	}
	return model.SessionStateInit
}
