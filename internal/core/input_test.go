package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Has(Fire) should be true after Set")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(Restart) should be false")
	}
}

func TestInputFrameHeld(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionLeft)

	if !f.IsHeld(ActionLeft) {
		t.Error("IsHeld(Left) should be true after Hold")
	}
	if f.Has(ActionLeft) {
		t.Error("Hold should not register a just-pressed event")
	}

	// A press during the frame counts as held
	f.Set(ActionRight)
	if !f.IsHeld(ActionRight) {
		t.Error("IsHeld(Right) should be true when pressed this frame")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) || f.IsHeld(ActionLeft) {
		t.Error("Zero-value frame should report nothing")
	}
	f.Set(ActionFire)
	f.Hold(ActionLeft)
	if !f.Has(ActionFire) || !f.IsHeld(ActionLeft) {
		t.Error("Zero-value frame should lazily allocate maps")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Hold(ActionRight)

	f.Clear()

	if f.Has(ActionFire) || f.IsHeld(ActionRight) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionFire, "Fire"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
