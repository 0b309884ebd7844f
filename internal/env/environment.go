// Package env defines the boundary to the external physics
// simulation that owns authoritative body transforms. The planning
// core reads and writes body state exclusively through the
// [Environment] interface; transports and fakes live behind it.
package env

import (
	"errors"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/maxtom/ompl/internal/space"
)

// Domain errors for environment access.
var (
	// ErrConnection indicates the link to the simulator is broken.
	// Operations failing with it are fatal for the current planning
	// step; the caller decides whether to reconnect.
	ErrConnection = errors.New("env: simulator connection lost")

	// ErrBodyIndex indicates a body index outside [0, RigidBodyCount).
	ErrBodyIndex = errors.New("env: body index out of range")

	// ErrClosed indicates use of an environment after Close.
	ErrClosed = errors.New("env: environment closed")
)

// Environment is the narrow capability contract the planning core
// needs from a live simulation.
//
// Reads of distinct bodies may run concurrently if the underlying
// simulator supports concurrent reads. Writes mutate shared simulator
// state and are not safe against concurrent writes; serialization is
// the caller's responsibility.
type Environment interface {
	// RigidBodyCount returns the number of tracked bodies, at least 1
	// for a usable environment.
	RigidBodyCount() int

	// BoundingVolume returns an axis-aligned box covering all tracked
	// geometry, used to derive default position bounds.
	BoundingVolume() space.Bounds

	// BodyTransform returns body's current position and orientation.
	// The orientation is unit-norm by simulator construction.
	BodyTransform(body int) (pos r3.Vec, rot quat.Number, err error)

	// SetBodyTransform pushes a position and orientation to body.
	SetBodyTransform(body int, pos r3.Vec, rot quat.Number) error

	// BodyVelocity returns body's linear and angular velocity.
	BodyVelocity(body int) (lin, ang r3.Vec, err error)

	// SetBodyVelocity pushes linear and angular velocity to body.
	SetBodyVelocity(body int, lin, ang r3.Vec) error
}
