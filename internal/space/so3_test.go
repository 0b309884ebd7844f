package space

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/num/quat"
)

// zRotation returns the quaternion for a rotation of angle radians
// about the z axis.
func zRotation(angle float64) quat.Number {
	return quat.Number{Real: math.Cos(angle / 2), Kmag: math.Sin(angle / 2)}
}

func quatApproxEqual(a, b quat.Number, tol float64) bool {
	// q and -q are the same rotation.
	return math.Abs(math.Abs(quatDot(a, b))-1) < tol
}

func TestSO3Distance(t *testing.T) {
	s := NewSO3Space()
	id := &SO3{Q: quat.Number{Real: 1}}
	if d := s.Distance(id, id); d != 0 {
		t.Errorf("expected zero self-distance, got %f", d)
	}

	// Antipodal quaternions represent the same rotation.
	neg := &SO3{Q: quat.Number{Real: -1}}
	if d := s.Distance(id, neg); d > 1e-12 {
		t.Errorf("expected zero distance for antipodal pair, got %f", d)
	}

	ninety := &SO3{Q: zRotation(math.Pi / 2)}
	if d := s.Distance(id, ninety); math.Abs(d-math.Pi/4) > 1e-12 {
		t.Errorf("expected pi/4, got %f", d)
	}
}

func TestSO3InterpolateEndpoints(t *testing.T) {
	s := NewSO3Space()
	rng := rand.New(rand.NewSource(3))
	a, b, out := &SO3{}, &SO3{}, &SO3{}
	for i := 0; i < 100; i++ {
		s.SampleUniform(rng, a)
		s.SampleUniform(rng, b)

		s.Interpolate(a, b, 0, out)
		if out.Q != a.Q {
			t.Fatalf("t=0 should yield from exactly, got %v want %v", out.Q, a.Q)
		}
		s.Interpolate(a, b, 1, out)
		if out.Q != b.Q {
			t.Fatalf("t=1 should yield to exactly, got %v want %v", out.Q, b.Q)
		}
	}
}

func TestSO3InterpolateSelf(t *testing.T) {
	s := NewSO3Space()
	rng := rand.New(rand.NewSource(5))
	a, out := &SO3{}, &SO3{}
	for i := 0; i < 100; i++ {
		s.SampleUniform(rng, a)
		t1 := rng.Float64()
		s.Interpolate(a, a, t1, out)
		if !quatApproxEqual(out.Q, a.Q, 1e-9) {
			t.Fatalf("self-interpolation at t=%f drifted: %v vs %v", t1, out.Q, a.Q)
		}
	}
}

func TestSO3InterpolateUnitNorm(t *testing.T) {
	s := NewSO3Space()
	rng := rand.New(rand.NewSource(11))
	a, b, out := &SO3{}, &SO3{}, &SO3{}
	for i := 0; i < 1500; i++ {
		s.SampleUniform(rng, a)
		s.SampleUniform(rng, b)
		s.Interpolate(a, b, rng.Float64(), out)
		n2 := quatDot(out.Q, out.Q)
		if math.Abs(n2-1) > 1e-9 {
			t.Fatalf("squared norm %g after interpolation", n2)
		}
	}
}

func TestSO3InterpolateShortestArc(t *testing.T) {
	s := NewSO3Space()
	id := &SO3{Q: quat.Number{Real: 1}}
	ninety := &SO3{Q: zRotation(math.Pi / 2)}
	out := &SO3{}

	s.Interpolate(id, ninety, 0.5, out)
	want := zRotation(math.Pi / 4)
	if !quatApproxEqual(out.Q, want, 1e-12) {
		t.Errorf("expected 45 degree rotation, got %v", out.Q)
	}

	// A negated endpoint is the same rotation; the flip must keep the
	// interpolation on the short arc.
	negNinety := &SO3{Q: quat.Scale(-1, ninety.Q)}
	s.Interpolate(id, negNinety, 0.5, out)
	if !quatApproxEqual(out.Q, want, 1e-12) {
		t.Errorf("sign-flipped endpoint took the long arc: %v", out.Q)
	}
}

func TestSO3SampleUniformNorm(t *testing.T) {
	s := NewSO3Space()
	rng := rand.New(rand.NewSource(13))
	out := &SO3{}
	for i := 0; i < 1000; i++ {
		s.SampleUniform(rng, out)
		if math.Abs(quatDot(out.Q, out.Q)-1) > 1e-9 {
			t.Fatalf("sampled quaternion not unit norm: %v", out.Q)
		}
	}
}
