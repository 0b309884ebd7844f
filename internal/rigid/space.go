package rigid

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/maxtom/ompl/internal/env"
	"github.com/maxtom/ompl/internal/space"
)

// Configuration errors, surfaced at construction.
var (
	// ErrNilEnvironment indicates construction without an environment.
	ErrNilEnvironment = errors.New("rigid: nil environment")

	// ErrNoBodies indicates an environment reporting zero bodies.
	ErrNoBodies = errors.New("rigid: environment reports no rigid bodies")
)

// Weights holds the distance weight for each substate kind, applied
// uniformly across bodies.
type Weights struct {
	Position    float64
	LinearVel   float64
	AngularVel  float64
	Orientation float64
}

// DefaultWeights returns the standard weighting: full weight on
// position and orientation, half on the velocities.
func DefaultWeights() Weights {
	return Weights{Position: 1.0, LinearVel: 0.5, AngularVel: 0.5, Orientation: 1.0}
}

// Space is the compound planning space for all rigid bodies of an
// environment. It owns no states, only the schema (body count,
// weights, bounds) used to create and operate on them.
//
// Bounds are unset after construction; call [Space.SetDefaultBounds]
// or supply bounds explicitly before sampling.
type Space struct {
	*space.Compound

	// DefaultVelBounds is the box applied to both velocity kinds by
	// SetDefaultBounds. The symmetric unit box is a convention, not a
	// derived quantity; override before calling SetDefaultBounds if
	// the scene moves faster.
	DefaultVelBounds space.Bounds

	environment env.Environment
	n           int
	weights     Weights
	pool        sync.Pool
}

// New constructs the compound space for every body of e, four
// children per body in position, linear velocity, angular velocity,
// orientation order.
func New(e env.Environment, w Weights) (*Space, error) {
	if e == nil {
		return nil, ErrNilEnvironment
	}
	n := e.RigidBodyCount()
	if n < 1 {
		return nil, ErrNoBodies
	}

	c := space.NewCompound()
	for body := 0; body < n; body++ {
		for offset, add := range []struct {
			sub    space.Subspace
			weight float64
		}{
			{space.NewVector3Space(space.Bounds{}), w.Position},
			{space.NewVector3Space(space.Bounds{}), w.LinearVel},
			{space.NewVector3Space(space.Bounds{}), w.AngularVel},
			{space.NewSO3Space(), w.Orientation},
		} {
			if err := c.AddSubspace(add.sub, add.weight); err != nil {
				return nil, fmt.Errorf("rigid: body %d child %d: %w", body, offset, err)
			}
		}
	}

	sp := &Space{
		Compound:         c,
		DefaultVelBounds: space.Unit(),
		environment:      e,
		n:                n,
		weights:          w,
	}
	sp.pool.New = func() any {
		return &State{CompoundState: *c.Alloc()}
	}
	return sp, nil
}

// Environment returns the simulator collaborator the space was
// constructed for.
func (sp *Space) Environment() env.Environment {
	return sp.environment
}

// NumBodies returns the number of bodies state is maintained for.
func (sp *Space) NumBodies() int {
	return sp.n
}

// Weights returns the per-kind distance weights.
func (sp *Space) Weights() Weights {
	return sp.weights
}

// Alloc returns a state with zeroed vectors, identity orientations
// and ValidCollision true. Ownership transfers to the caller; release
// with Free.
func (sp *Space) Alloc() *State {
	s := sp.pool.Get().(*State)
	for body := 0; body < sp.n; body++ {
		*s.BodyPosition(body) = r3.Vec{}
		*s.BodyLinearVelocity(body) = r3.Vec{}
		*s.BodyAngularVelocity(body) = r3.Vec{}
		*s.BodyRotation(body) = quat.Number{Real: 1}
	}
	s.ValidCollision = true
	return s
}

// Free recycles a state allocated by this space. Passing a state from
// another space corrupts the pool; it is a programmer error.
func (sp *Space) Free(s *State) {
	sp.pool.Put(s)
}

// Copy deep-copies src into dst, including the validity flag. The
// result shares no storage with src.
func (sp *Space) Copy(dst, src *State) {
	sp.Compound.Copy(&dst.CompoundState, &src.CompoundState)
	dst.ValidCollision = src.ValidCollision
}

// Distance returns the weighted sum of per-child distances.
func (sp *Space) Distance(a, b *State) float64 {
	return sp.Compound.Distance(&a.CompoundState, &b.CompoundState)
}

// Interpolate writes the configuration at fraction t from `from` to
// `to` into out: componentwise lerp for the Euclidean children,
// shortest-arc slerp for orientations. The validity flag of out is
// reset to true; an interpolated state inherits neither endpoint's
// validity.
func (sp *Space) Interpolate(from, to *State, t float64, out *State) {
	sp.Compound.Interpolate(&from.CompoundState, &to.CompoundState, t, &out.CompoundState)
	out.ValidCollision = true
}

// SetDefaultBounds derives position bounds from the environment's
// bounding volume and applies DefaultVelBounds to both velocity
// kinds.
func (sp *Space) SetDefaultBounds() error {
	if err := sp.SetVolumeBounds(sp.environment.BoundingVolume()); err != nil {
		return fmt.Errorf("rigid: default volume bounds: %w", err)
	}
	if err := sp.SetLinearVelocityBounds(sp.DefaultVelBounds); err != nil {
		return fmt.Errorf("rigid: default linear velocity bounds: %w", err)
	}
	if err := sp.SetAngularVelocityBounds(sp.DefaultVelBounds); err != nil {
		return fmt.Errorf("rigid: default angular velocity bounds: %w", err)
	}
	return nil
}

// SetVolumeBounds applies b to every position subspace.
func (sp *Space) SetVolumeBounds(b space.Bounds) error {
	return sp.setKindBounds(offsetPosition, b)
}

// SetLinearVelocityBounds applies b to every linear velocity
// subspace.
func (sp *Space) SetLinearVelocityBounds(b space.Bounds) error {
	return sp.setKindBounds(offsetLinVel, b)
}

// SetAngularVelocityBounds applies b to every angular velocity
// subspace.
func (sp *Space) SetAngularVelocityBounds(b space.Bounds) error {
	return sp.setKindBounds(offsetAngVel, b)
}

func (sp *Space) setKindBounds(offset int, b space.Bounds) error {
	if err := b.Check(); err != nil {
		return err
	}
	for body := 0; body < sp.n; body++ {
		sub := sp.Subspace(partsPerBody*body + offset).(*space.Vector3Space)
		if err := sub.SetBounds(b); err != nil {
			return err
		}
	}
	return nil
}

// SatisfiesBoundsExceptRotation reports whether every position and
// velocity substate lies within its bounds. Orientations are skipped:
// the simulator integrates them continuously and they may drift
// marginally outside a nominal representation without being
// physically invalid.
func (sp *Space) SatisfiesBoundsExceptRotation(s *State) bool {
	for body := 0; body < sp.n; body++ {
		for offset := offsetPosition; offset <= offsetAngVel; offset++ {
			i := partsPerBody*body + offset
			if !sp.Subspace(i).SatisfiesBounds(s.Components[i]) {
				return false
			}
		}
	}
	return true
}
