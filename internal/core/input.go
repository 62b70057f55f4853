package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionConfirm        // Enter - start run / confirm card
	ActionRestart        // R key - new run after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPick1          // 1 - first upgrade card
	ActionPick2          // 2 - second upgrade card
	ActionPick3          // 3 - third upgrade card
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPick1:
		return "Pick1"
	case ActionPick2:
		return "Pick2"
	case ActionPick3:
		return "Pick3"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// Directional actions come from the keyboard; Stick is an analog vector with
// both components in [-1, 1] (joystick or autopilot).
type InputFrame struct {
	// Actions maps action types to whether they were held this frame.
	Actions map[Action]bool

	// Stick overrides the keyboard direction when non-zero.
	Stick Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction resolves the movement vector for this frame.
// A non-zero stick wins over the keyboard and is used as-is (magnitude scaled).
// The keyboard vector is normalized to unit length, so diagonals are not faster.
func (f InputFrame) Direction() Vec2 {
	stick := Vec2{X: ClampF(f.Stick.X, -1, 1), Y: ClampF(f.Stick.Y, -1, 1)}
	if !stick.IsZero() {
		return stick
	}

	var d Vec2
	if f.Has(ActionUp) {
		d.Y--
	}
	if f.Has(ActionDown) {
		d.Y++
	}
	if f.Has(ActionLeft) {
		d.X--
	}
	if f.Has(ActionRight) {
		d.X++
	}
	return d.Normalize()
}
