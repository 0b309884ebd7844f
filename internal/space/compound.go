package space

// CompoundState is an ordered sequence of substates, one per child
// subspace of the owning [Compound].
type CompoundState struct {
	Components []Substate
}

// Compound composes an ordered list of subspaces, each with a scalar
// weight applied to its contribution to the composite distance.
type Compound struct {
	subspaces []Subspace
	weights   []float64
}

// NewCompound returns an empty compound space.
func NewCompound() *Compound {
	return &Compound{}
}

// AddSubspace appends a child subspace with the given distance
// weight. Returns ErrNegativeWeight for weights below zero.
func (c *Compound) AddSubspace(s Subspace, weight float64) error {
	if weight < 0 {
		return ErrNegativeWeight
	}
	c.subspaces = append(c.subspaces, s)
	c.weights = append(c.weights, weight)
	return nil
}

// Count returns the number of child subspaces.
func (c *Compound) Count() int {
	return len(c.subspaces)
}

// Subspace returns the child at index i.
func (c *Compound) Subspace(i int) Subspace {
	return c.subspaces[i]
}

// Weight returns the distance weight of the child at index i.
func (c *Compound) Weight(i int) float64 {
	return c.weights[i]
}

// Alloc returns a state with one freshly allocated substate per
// child. Ownership transfers to the caller.
func (c *Compound) Alloc() *CompoundState {
	s := &CompoundState{Components: make([]Substate, len(c.subspaces))}
	for i, sub := range c.subspaces {
		s.Components[i] = sub.Alloc()
	}
	return s
}

// Copy deep-copies src into dst. Both must have been allocated by
// this space.
func (c *Compound) Copy(dst, src *CompoundState) {
	for i, sub := range c.subspaces {
		sub.Copy(dst.Components[i], src.Components[i])
	}
}

// Distance returns the weighted sum of child distances.
func (c *Compound) Distance(a, b *CompoundState) float64 {
	d := 0.0
	for i, sub := range c.subspaces {
		d += c.weights[i] * sub.Distance(a.Components[i], b.Components[i])
	}
	return d
}

// Interpolate interpolates every child at fraction t.
func (c *Compound) Interpolate(from, to *CompoundState, t float64, out *CompoundState) {
	for i, sub := range c.subspaces {
		sub.Interpolate(from.Components[i], to.Components[i], t, out.Components[i])
	}
}

// SatisfiesBounds reports whether every child substate lies within
// its subspace bounds.
func (c *Compound) SatisfiesBounds(s *CompoundState) bool {
	for i, sub := range c.subspaces {
		if !sub.SatisfiesBounds(s.Components[i]) {
			return false
		}
	}
	return true
}
