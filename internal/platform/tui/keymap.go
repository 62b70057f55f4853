package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// KeyMap defines the key bindings for a run.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Pick1      key.Binding
	Pick2      key.Binding
	Pick3      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Pick1, k.Pick2, k.Pick3},
		{k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Pick1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "first card"),
		),
		Pick2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "second card"),
		),
		Pick3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "third card"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new run"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionConfirm
	case key.Matches(msg, k.Pick1):
		return core.ActionPick1
	case key.Matches(msg, k.Pick2):
		return core.ActionPick2
	case key.Matches(msg, k.Pick3):
		return core.ActionPick3
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// opposite pairs cancel each other on press.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HeldInput turns key presses into held directions.
// Terminals report presses and auto-repeats but never releases, so a press
// keeps its direction held for a window of ticks.
type HeldInput struct {
	window int
	ticks  map[core.Action]int
}

// NewHeldInput creates a hold tracker. window is in ticks.
func NewHeldInput(window int) *HeldInput {
	if window <= 0 {
		window = 1
	}
	return &HeldInput{window: window, ticks: make(map[core.Action]int)}
}

// Press holds a direction for the window. Non-directional actions are ignored.
func (h *HeldInput) Press(a core.Action) {
	opp, ok := opposite[a]
	if !ok {
		return
	}
	delete(h.ticks, opp)
	h.ticks[a] = h.window
}

// Frame returns the input for the next tick and ages every hold by one tick.
func (h *HeldInput) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, left := range h.ticks {
		frame.Set(a)
		if left <= 1 {
			delete(h.ticks, a)
		} else {
			h.ticks[a] = left - 1
		}
	}
	return frame
}

// Reset drops every hold.
func (h *HeldInput) Reset() {
	for a := range h.ticks {
		delete(h.ticks, a)
	}
}
