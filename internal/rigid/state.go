package rigid

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/maxtom/ompl/internal/space"
)

// Per-body substate layout. Body b occupies compound children
// partsPerBody*b + offset.
const (
	offsetPosition = iota
	offsetLinVel
	offsetAngVel
	offsetRotation
	partsPerBody
)

// State is one planning configuration for all bodies of a [Space].
//
// ValidCollision caches the outcome of the most recent validity check
// for this exact configuration. It defaults to true (unknown, assumed
// valid), is reset on every interpolation and sample, and is never
// part of the distance metric. Setting it is part of the public
// contract: validity checkers write it after each query.
type State struct {
	space.CompoundState

	ValidCollision bool
}

// BodyPosition returns a live view of body's position. Writes through
// the pointer are visible to every space operation on the state.
// Panics if body is out of range.
func (s *State) BodyPosition(body int) *r3.Vec {
	return &s.part(body, offsetPosition).(*space.Vec3).V
}

// BodyLinearVelocity returns a live view of body's linear velocity.
func (s *State) BodyLinearVelocity(body int) *r3.Vec {
	return &s.part(body, offsetLinVel).(*space.Vec3).V
}

// BodyAngularVelocity returns a live view of body's angular velocity.
func (s *State) BodyAngularVelocity(body int) *r3.Vec {
	return &s.part(body, offsetAngVel).(*space.Vec3).V
}

// BodyRotation returns a live view of body's orientation quaternion.
func (s *State) BodyRotation(body int) *quat.Number {
	return &s.part(body, offsetRotation).(*space.SO3).Q
}

func (s *State) part(body, offset int) space.Substate {
	if body < 0 || partsPerBody*body >= len(s.Components) {
		panic(fmt.Sprintf("rigid: body index %d out of range for %d bodies",
			body, len(s.Components)/partsPerBody))
	}
	return s.Components[partsPerBody*body+offset]
}
