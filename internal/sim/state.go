package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned for a phase change the state machine forbids.
	ErrInvalidTransition = errors.New("sim: invalid phase transition")
	// ErrNotLevelingUp is returned when a card is applied outside a level-up.
	ErrNotLevelingUp = errors.New("sim: no level-up pending")
	// ErrUnknownUpgrade is returned for a card whose kind is not recognized.
	ErrUnknownUpgrade = errors.New("sim: unknown upgrade kind")
)

// Phase is the whole-game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLevelUp
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseLevelUp:
		return "LevelUp"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// transitions lists the phases reachable from each phase. GameOver has none.
var transitions = map[Phase][]Phase{
	PhaseMenu:     {PhasePlaying},
	PhasePlaying:  {PhaseLevelUp, PhaseGameOver},
	PhaseLevelUp:  {PhasePlaying},
	PhaseGameOver: nil,
}

// CanTransition reports whether the state machine allows p -> to.
func (p Phase) CanTransition(to Phase) bool {
	for _, next := range transitions[p] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (p Phase) Terminal() bool {
	return len(transitions[p]) == 0
}
