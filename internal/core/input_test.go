package core

import "testing"

func TestInputFrameEdgesAndLevels(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Hold(ActionJump, true)

	if !f.Has(ActionJump) || !f.IsHeld(ActionJump) {
		t.Fatal("Jump should be pressed and held")
	}
	if f.Has(ActionPause) {
		t.Error("Pause was never pressed")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop pressed actions")
	}
	if !f.IsHeld(ActionJump) {
		t.Error("Clear should keep held actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.IsHeld(ActionJump) {
		t.Error("Zero frame should report nothing")
	}
	f.Set(ActionPause)
	f.Hold(ActionJump, true)
	if !f.Has(ActionPause) || !f.IsHeld(ActionJump) {
		t.Error("Zero frame should lazily allocate")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionRestart) {
		t.Error("Clone should not share state with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestInputFrameRelease(t *testing.T) {
	var f InputFrame
	f.Hold(ActionJump, true)
	f.Hold(ActionPause, true)
	f.Hold(ActionJump, false)

	if f.IsHeld(ActionJump) {
		t.Error("released action should not be held")
	}
	if !f.IsHeld(ActionPause) {
		t.Error("releasing one action should keep the others")
	}
}
