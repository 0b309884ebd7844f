package rigid

import (
	"math/rand"

	"github.com/maxtom/ompl/internal/space"
)

// Sampler draws uniform states from a Space: positions and velocities
// uniform within their bounds, orientations uniform over SO(3). Each
// drawn state has ValidCollision true (unknown).
type Sampler struct {
	base *space.Sampler
}

// NewSampler returns a uniform sampler. The random source is owned by
// the caller and must not be shared across goroutines.
func NewSampler(sp *Space, rng *rand.Rand) *Sampler {
	return &Sampler{base: space.NewSampler(sp.Compound, rng)}
}

// Sample fills out with a fresh uniform draw.
func (s *Sampler) Sample(out *State) {
	s.base.Sample(&out.CompoundState)
	out.ValidCollision = true
}

// ValidSampler is a validity-biased sampler: it redraws until a
// caller-supplied check confirms the sample, giving up after a fixed
// number of attempts so sampling never blocks indefinitely.
type ValidSampler struct {
	base     *Sampler
	valid    func(*State) bool
	attempts int
}

// NewValidSampler wraps a uniform sampler with a cheap validity
// check. maxAttempts values below 1 are treated as 1.
func NewValidSampler(sp *Space, rng *rand.Rand, valid func(*State) bool, maxAttempts int) *ValidSampler {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &ValidSampler{
		base:     NewSampler(sp, rng),
		valid:    valid,
		attempts: maxAttempts,
	}
}

// Sample draws until the check passes or the attempt budget is spent.
// It reports whether the final sample was confirmed valid; on failure
// out holds the last draw with ValidCollision false.
func (v *ValidSampler) Sample(out *State) bool {
	for i := 0; i < v.attempts; i++ {
		v.base.Sample(out)
		if v.valid(out) {
			return true
		}
	}
	out.ValidCollision = false
	return false
}
