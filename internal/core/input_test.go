package core

import (
	"math"
	"testing"
)

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionUp) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Stick = V(0.5, 0)
	if !f.Has(ActionUp) {
		t.Error("Set action should be reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("Unset action should not be reported")
	}
	if f.Direction() != V(0.5, 0) {
		t.Errorf("Direction() = %v, expected the stick", f.Direction())
	}
}

func TestDirection(t *testing.T) {
	diag := 1 / math.Sqrt2

	tests := []struct {
		name     string
		actions  []Action
		stick    Vec2
		expected Vec2
	}{
		{"no input", nil, Vec2{}, Vec2{}},
		{"right only", []Action{ActionRight}, Vec2{}, V(1, 0)},
		{"up only", []Action{ActionUp}, Vec2{}, V(0, -1)},
		{"opposing keys cancel", []Action{ActionLeft, ActionRight}, Vec2{}, Vec2{}},
		{"diagonal normalized", []Action{ActionDown, ActionRight}, Vec2{}, V(diag, diag)},
		{"stick overrides keys", []Action{ActionLeft}, V(0.3, 0.4), V(0.3, 0.4)},
		{"stick clamped", nil, V(3, -2), V(1, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			f.Stick = tc.stick

			d := f.Direction()
			if math.Abs(d.X-tc.expected.X) > eps || math.Abs(d.Y-tc.expected.Y) > eps {
				t.Errorf("Direction() = %v, expected %v", d, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionPick2.String() != "Pick2" {
		t.Errorf("String() = %q, expected Pick2", ActionPick2.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("Unknown action should stringify as Unknown")
	}
}
