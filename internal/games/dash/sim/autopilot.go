package sim

// Autopilot is a simple input source that jumps over whatever is ahead.
// It is used by the headless runner and demo modes.
type Autopilot struct {
	session *Session
	lead    float64 // seconds of look-ahead
	pressed bool
}

// NewAutopilot creates an autopilot that reacts lead seconds before contact.
func NewAutopilot(session *Session, lead float64) *Autopilot {
	return &Autopilot{session: session, lead: lead}
}

// Poll presses jump when the next object ahead is within reach, and restarts
// after a game over.
func (a *Autopilot) Poll() Commands {
	s := a.session
	if s.Phase() == GameOver {
		return Commands{RestartRequested: true}
	}

	m := s.Mover()
	reach := s.Speed() * a.lead
	want := false
	for _, o := range s.world.Objects() {
		if o.Right() < m.X {
			continue
		}
		gap := o.X - (m.X + m.W)
		want = gap <= reach && !(o.Kind == Solid && m.Bottom() <= o.Y)
		break
	}

	cmd := Commands{JumpPressed: want && !a.pressed, JumpHeld: want}
	a.pressed = want
	return cmd
}
