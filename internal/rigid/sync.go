package rigid

import "fmt"

// ReadState pulls every body's live transform and velocities from the
// environment into s. Orientations are copied as-is; the simulator
// maintains them unit-norm. The validity flag is reset to true since
// the new configuration has not been checked. A failure is fatal for
// the operation and is not retried; s may be partially written.
func (sp *Space) ReadState(s *State) error {
	for body := 0; body < sp.n; body++ {
		pos, rot, err := sp.environment.BodyTransform(body)
		if err != nil {
			return fmt.Errorf("rigid: read body %d transform: %w", body, err)
		}
		lin, ang, err := sp.environment.BodyVelocity(body)
		if err != nil {
			return fmt.Errorf("rigid: read body %d velocity: %w", body, err)
		}
		*s.BodyPosition(body) = pos
		*s.BodyRotation(body) = rot
		*s.BodyLinearVelocity(body) = lin
		*s.BodyAngularVelocity(body) = ang
	}
	s.ValidCollision = true
	return nil
}

// WriteState pushes every body's substates from s into the
// environment.
//
// Not safe for concurrent invocation against the same environment:
// per-body writes interleave unpredictably. Callers needing
// concurrent simulation must serialize WriteState (and any simulator
// stepping) externally.
func (sp *Space) WriteState(s *State) error {
	for body := 0; body < sp.n; body++ {
		if err := sp.environment.SetBodyTransform(body, *s.BodyPosition(body), *s.BodyRotation(body)); err != nil {
			return fmt.Errorf("rigid: write body %d transform: %w", body, err)
		}
		if err := sp.environment.SetBodyVelocity(body, *s.BodyLinearVelocity(body), *s.BodyAngularVelocity(body)); err != nil {
			return fmt.Errorf("rigid: write body %d velocity: %w", body, err)
		}
	}
	return nil
}
