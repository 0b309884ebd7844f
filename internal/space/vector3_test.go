package space

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestVector3Distance(t *testing.T) {
	v := NewVector3Space(Unit())
	a := &Vec3{V: r3.Vec{X: 1, Y: 2, Z: 2}}
	b := &Vec3{}
	if d := v.Distance(a, b); math.Abs(d-3) > 1e-12 {
		t.Errorf("expected distance 3, got %f", d)
	}
	if d := v.Distance(a, a); d != 0 {
		t.Errorf("expected zero self-distance, got %f", d)
	}
}

func TestVector3Interpolate(t *testing.T) {
	v := NewVector3Space(Unit())
	from := &Vec3{V: r3.Vec{X: 1, Y: 0, Z: -2}}
	to := &Vec3{V: r3.Vec{X: 3, Y: 4, Z: 2}}
	out := &Vec3{}

	v.Interpolate(from, to, 0, out)
	if out.V != from.V {
		t.Errorf("t=0 should yield from, got %v", out.V)
	}
	v.Interpolate(from, to, 1, out)
	if out.V != to.V {
		t.Errorf("t=1 should yield to, got %v", out.V)
	}
	v.Interpolate(from, to, 0.5, out)
	want := r3.Vec{X: 2, Y: 2, Z: 0}
	if out.V != want {
		t.Errorf("t=0.5: expected %v, got %v", want, out.V)
	}
}

func TestVector3SetBounds(t *testing.T) {
	v := NewVector3Space(Unit())
	if err := v.SetBounds(Bounds{Low: r3.Vec{X: 1}, High: r3.Vec{X: -1}}); err == nil {
		t.Error("expected error for inverted bounds")
	}
	custom := Bounds{Low: r3.Vec{X: -10, Y: -10, Z: -10}, High: r3.Vec{X: 10, Y: 10, Z: 10}}
	if err := v.SetBounds(custom); err != nil {
		t.Fatalf("set bounds failed: %v", err)
	}
	if !v.SatisfiesBounds(&Vec3{V: r3.Vec{X: 5}}) {
		t.Error("state within custom bounds should satisfy them")
	}
}

func TestVector3SampleWithinBounds(t *testing.T) {
	v := NewVector3Space(Bounds{Low: r3.Vec{X: -3, Y: 2, Z: 0}, High: r3.Vec{X: 3, Y: 5, Z: 1}})
	rng := rand.New(rand.NewSource(7))
	out := &Vec3{}
	for i := 0; i < 500; i++ {
		v.SampleUniform(rng, out)
		if !v.SatisfiesBounds(out) {
			t.Fatalf("sample %v outside bounds", out.V)
		}
	}
}
