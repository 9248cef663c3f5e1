package core

// Action represents a semantic input action, abstracted from physical keys,
// mouse buttons or touches.
type Action uint8

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up, click, tap
	ActionPause          // P, Escape in the terminal
	ActionRestart        // R
	ActionBack           // B, leaves a paused or finished run
	ActionQuit           // Q, Ctrl+C
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionJump:    "Jump",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// actionSet is a bitmask of actions.
type actionSet uint16

func (s actionSet) has(a Action) bool { return s&(1<<a) != 0 }

func (s *actionSet) put(a Action, on bool) {
	if on {
		*s |= 1 << a
	} else {
		*s &^= 1 << a
	}
}

// InputFrame is the input gathered by an adapter between two frames.
// Pressed actions are edge-triggered (went down since the last frame);
// held actions are level-triggered (currently down). The zero value is empty
// and frames copy by value.
type InputFrame struct {
	pressed actionSet
	held    actionSet
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	f.pressed.put(a, true)
}

// Hold marks an action as currently held down, or released.
func (f *InputFrame) Hold(a Action, down bool) {
	f.held.put(a, down)
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.pressed.has(a)
}

// IsHeld returns true if the action is held down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.held.has(a)
}

// Clear drops the edge-triggered actions for the next frame.
// Held state is owned by the adapter and survives.
func (f *InputFrame) Clear() {
	f.pressed = 0
}

// Clone returns a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
