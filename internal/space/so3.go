package space

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
)

// nlerpThreshold is the quaternion dot product above which slerp
// degenerates numerically and linear interpolation is used instead.
const nlerpThreshold = 1.0 - 1e-9

var _ Subspace = (*SO3Space)(nil)

// SO3Space is the rotation subspace. States are unit quaternions; the
// space has no settable bounds.
type SO3Space struct{}

// NewSO3Space returns the rotation subspace.
func NewSO3Space() *SO3Space {
	return &SO3Space{}
}

// Alloc returns the identity orientation.
func (s *SO3Space) Alloc() Substate {
	return &SO3{Q: quat.Number{Real: 1}}
}

func (s *SO3Space) Copy(dst, src Substate) {
	dst.(*SO3).Q = src.(*SO3).Q
}

// Distance returns the great-circle angle between two orientations,
// in [0, pi/2]. Antipodal quaternions represent the same rotation and
// are at distance zero.
func (s *SO3Space) Distance(a, b Substate) float64 {
	d := math.Abs(quatDot(a.(*SO3).Q, b.(*SO3).Q))
	if d > 1 {
		d = 1
	}
	return math.Acos(d)
}

// Interpolate performs shortest-arc spherical interpolation. The
// endpoints are returned exactly for t == 0 and t == 1; interior
// points follow the shorter great-circle path, with the branch at a
// dot product of exactly zero resolved as "no flip". The result is
// renormalized to unit length.
func (s *SO3Space) Interpolate(from, to Substate, t float64, out Substate) {
	qa, qb := from.(*SO3).Q, to.(*SO3).Q
	switch t {
	case 0:
		out.(*SO3).Q = qa
		return
	case 1:
		out.(*SO3).Q = qb
		return
	}

	dot := quatDot(qa, qb)
	if dot < 0 {
		qb = quat.Scale(-1, qb)
		dot = -dot
	}

	var q quat.Number
	if dot > nlerpThreshold {
		q = quat.Add(quat.Scale(1-t, qa), quat.Scale(t, qb))
	} else {
		theta := math.Acos(dot)
		sin := math.Sin(theta)
		q = quat.Add(
			quat.Scale(math.Sin((1-t)*theta)/sin, qa),
			quat.Scale(math.Sin(t*theta)/sin, qb),
		)
	}
	out.(*SO3).Q = quatNormalize(q)
}

// SampleUniform draws an orientation uniformly over SO(3) using
// Shoemake's subgroup method.
func (s *SO3Space) SampleUniform(rng *rand.Rand, out Substate) {
	u1, u2, u3 := rng.Float64(), rng.Float64(), rng.Float64()
	a, b := math.Sqrt(1-u1), math.Sqrt(u1)
	out.(*SO3).Q = quat.Number{
		Imag: a * math.Sin(2*math.Pi*u2),
		Jmag: a * math.Cos(2*math.Pi*u2),
		Kmag: b * math.Sin(2*math.Pi*u3),
		Real: b * math.Cos(2*math.Pi*u3),
	}
}

// SatisfiesBounds always returns true; the unit sphere is unbounded
// in the box sense.
func (s *SO3Space) SatisfiesBounds(Substate) bool {
	return true
}

func quatDot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

func quatNormalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/n, q)
}
