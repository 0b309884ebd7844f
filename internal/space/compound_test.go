package space

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func newTestCompound(t *testing.T) *Compound {
	t.Helper()
	c := NewCompound()
	if err := c.AddSubspace(NewVector3Space(Unit()), 2.0); err != nil {
		t.Fatalf("add vector subspace: %v", err)
	}
	if err := c.AddSubspace(NewSO3Space(), 0.5); err != nil {
		t.Fatalf("add rotation subspace: %v", err)
	}
	return c
}

func TestCompoundRejectsNegativeWeight(t *testing.T) {
	c := NewCompound()
	if err := c.AddSubspace(NewSO3Space(), -0.1); err == nil {
		t.Error("expected error for negative weight")
	}
}

func TestCompoundAlloc(t *testing.T) {
	c := newTestCompound(t)
	s := c.Alloc()
	if len(s.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(s.Components))
	}
	if _, ok := s.Components[0].(*Vec3); !ok {
		t.Error("component 0 should be a Vec3")
	}
	if _, ok := s.Components[1].(*SO3); !ok {
		t.Error("component 1 should be an SO3")
	}
}

func TestCompoundWeightedDistance(t *testing.T) {
	c := newTestCompound(t)
	a, b := c.Alloc(), c.Alloc()
	a.Components[0].(*Vec3).V = r3.Vec{X: 1}
	b.Components[1].(*SO3).Q = zRotation(math.Pi / 2)

	// 2.0 * 1 (euclidean) + 0.5 * pi/4 (arc)
	want := 2.0 + 0.5*math.Pi/4
	if d := c.Distance(a, b); math.Abs(d-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, d)
	}
}

func TestCompoundCopyIsDeep(t *testing.T) {
	c := newTestCompound(t)
	src, dst := c.Alloc(), c.Alloc()
	src.Components[0].(*Vec3).V = r3.Vec{X: 0.5, Y: -0.5}
	src.Components[1].(*SO3).Q = zRotation(1)

	c.Copy(dst, src)
	src.Components[0].(*Vec3).V = r3.Vec{}
	src.Components[1].(*SO3).Q = quat.Number{Real: 1}

	if dst.Components[0].(*Vec3).V != (r3.Vec{X: 0.5, Y: -0.5}) {
		t.Error("mutating src changed dst vector")
	}
	if dst.Components[1].(*SO3).Q != zRotation(1) {
		t.Error("mutating src changed dst rotation")
	}
}

func TestCompoundInterpolateRecurses(t *testing.T) {
	c := newTestCompound(t)
	from, to, out := c.Alloc(), c.Alloc(), c.Alloc()
	to.Components[0].(*Vec3).V = r3.Vec{X: 1}
	to.Components[1].(*SO3).Q = zRotation(math.Pi / 2)

	c.Interpolate(from, to, 0.5, out)
	if v := out.Components[0].(*Vec3).V; v != (r3.Vec{X: 0.5}) {
		t.Errorf("vector child not interpolated: %v", v)
	}
	if q := out.Components[1].(*SO3).Q; !quatApproxEqual(q, zRotation(math.Pi/4), 1e-12) {
		t.Errorf("rotation child not slerped: %v", q)
	}
}

func TestCompoundSatisfiesBounds(t *testing.T) {
	c := newTestCompound(t)
	s := c.Alloc()
	if !c.SatisfiesBounds(s) {
		t.Error("zero state should satisfy unit bounds")
	}
	s.Components[0].(*Vec3).V = r3.Vec{X: 2}
	if c.SatisfiesBounds(s) {
		t.Error("out-of-box vector should fail bounds")
	}
}
