package space

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Domain errors for space construction and use.
var (
	// ErrInvalidBounds indicates a box with low > high on some axis.
	ErrInvalidBounds = errors.New("space: invalid bounds (low > high)")

	// ErrNegativeWeight indicates a subspace weight below zero.
	ErrNegativeWeight = errors.New("space: subspace weight must be non-negative")
)

// Substate is one homogeneous component of a compound state. The set
// of kinds is closed: [Vec3] and [SO3].
type Substate interface {
	substate()
}

// Vec3 is a 3-vector substate (position, linear or angular velocity).
type Vec3 struct {
	V r3.Vec
}

func (*Vec3) substate() {}

// SO3 is a unit-quaternion substate representing an orientation.
type SO3 struct {
	Q quat.Number
}

func (*SO3) substate() {}

// Subspace is the capability interface every substate kind supports.
// Implementations must treat states produced by a different subspace
// kind as a programmer error and panic.
type Subspace interface {
	// Alloc returns a fresh zero-value substate of this kind.
	Alloc() Substate

	// Copy deep-copies src into dst.
	Copy(dst, src Substate)

	// Distance returns the metric distance between two substates.
	Distance(a, b Substate) float64

	// Interpolate writes the point at fraction t on the path from
	// `from` to `to` into out. t must be in [0, 1].
	Interpolate(from, to Substate, t float64, out Substate)

	// SampleUniform draws a substate uniformly from the subspace.
	SampleUniform(rng *rand.Rand, out Substate)

	// SatisfiesBounds reports whether s lies within the subspace
	// bounds. Unbounded subspaces always return true.
	SatisfiesBounds(s Substate) bool
}
