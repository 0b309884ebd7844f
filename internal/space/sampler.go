package space

import "math/rand"

// Sampler draws uniform states from a compound space. The random
// source is injected by the caller and is not safe for concurrent
// use; give each sampling goroutine its own Sampler.
type Sampler struct {
	space *Compound
	rng   *rand.Rand
}

// NewSampler returns a uniform sampler over c.
func NewSampler(c *Compound, rng *rand.Rand) *Sampler {
	return &Sampler{space: c, rng: rng}
}

// Sample fills out with one uniform draw per child subspace.
func (s *Sampler) Sample(out *CompoundState) {
	for i := 0; i < s.space.Count(); i++ {
		s.space.Subspace(i).SampleUniform(s.rng, out.Components[i])
	}
}
