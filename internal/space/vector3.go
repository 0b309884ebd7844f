package space

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

var _ Subspace = (*Vector3Space)(nil)

// Vector3Space is a bounded Euclidean subspace over R3.
type Vector3Space struct {
	bounds Bounds
}

// NewVector3Space returns a subspace with the given bounds.
func NewVector3Space(b Bounds) *Vector3Space {
	return &Vector3Space{bounds: b}
}

// Bounds returns the current bounds.
func (v *Vector3Space) Bounds() Bounds {
	return v.bounds
}

// SetBounds replaces the bounds. Returns ErrInvalidBounds if low >
// high on any axis.
func (v *Vector3Space) SetBounds(b Bounds) error {
	if err := b.Check(); err != nil {
		return err
	}
	v.bounds = b
	return nil
}

func (v *Vector3Space) Alloc() Substate {
	return &Vec3{}
}

func (v *Vector3Space) Copy(dst, src Substate) {
	dst.(*Vec3).V = src.(*Vec3).V
}

func (v *Vector3Space) Distance(a, b Substate) float64 {
	return r3.Norm(r3.Sub(a.(*Vec3).V, b.(*Vec3).V))
}

func (v *Vector3Space) Interpolate(from, to Substate, t float64, out Substate) {
	f, g := from.(*Vec3).V, to.(*Vec3).V
	out.(*Vec3).V = r3.Add(f, r3.Scale(t, r3.Sub(g, f)))
}

func (v *Vector3Space) SampleUniform(rng *rand.Rand, out Substate) {
	out.(*Vec3).V = v.bounds.Sample(rng)
}

func (v *Vector3Space) SatisfiesBounds(s Substate) bool {
	return v.bounds.Contains(s.(*Vec3).V)
}
