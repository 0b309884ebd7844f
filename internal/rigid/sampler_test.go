package rigid

import (
	"math"
	"math/rand"
	"testing"
)

func TestSamplerUniform(t *testing.T) {
	sp := newTestSpace(t, 2)
	s := NewSampler(sp, rand.New(rand.NewSource(17)))
	out := sp.Alloc()
	defer sp.Free(out)

	for i := 0; i < 500; i++ {
		out.ValidCollision = false
		s.Sample(out)
		if !out.ValidCollision {
			t.Fatal("sampled state should have ValidCollision true")
		}
		if !sp.SatisfiesBoundsExceptRotation(out) {
			t.Fatalf("sample %d outside bounds", i)
		}
		for b := 0; b < sp.NumBodies(); b++ {
			q := *out.BodyRotation(b)
			n2 := q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag
			if math.Abs(n2-1) > 1e-9 {
				t.Fatalf("body %d orientation not unit norm: %g", b, n2)
			}
		}
	}
}

func TestValidSamplerAcceptsConfirmed(t *testing.T) {
	sp := newTestSpace(t, 1)
	vs := NewValidSampler(sp, rand.New(rand.NewSource(19)),
		func(s *State) bool { return s.BodyPosition(0).X > 0 }, 100)
	out := sp.Alloc()
	defer sp.Free(out)

	if !vs.Sample(out) {
		t.Fatal("expected a confirmed sample within 100 attempts")
	}
	if !out.ValidCollision {
		t.Error("confirmed sample should keep ValidCollision true")
	}
	if out.BodyPosition(0).X <= 0 {
		t.Error("confirmed sample does not satisfy the check")
	}
}

func TestValidSamplerBoundedRetries(t *testing.T) {
	sp := newTestSpace(t, 1)
	calls := 0
	vs := NewValidSampler(sp, rand.New(rand.NewSource(23)),
		func(s *State) bool { calls++; return false }, 7)
	out := sp.Alloc()
	defer sp.Free(out)

	if vs.Sample(out) {
		t.Fatal("check always fails, sample must report failure")
	}
	if calls != 7 {
		t.Errorf("expected exactly 7 attempts, got %d", calls)
	}
	if out.ValidCollision {
		t.Error("rejected sample must carry ValidCollision false")
	}
}

func TestValidSamplerMinimumOneAttempt(t *testing.T) {
	sp := newTestSpace(t, 1)
	calls := 0
	vs := NewValidSampler(sp, rand.New(rand.NewSource(29)),
		func(s *State) bool { calls++; return true }, 0)
	out := sp.Alloc()
	defer sp.Free(out)

	if !vs.Sample(out) {
		t.Fatal("expected success on the single attempt")
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt, got %d", calls)
	}
}
