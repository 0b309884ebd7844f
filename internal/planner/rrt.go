// Package planner provides a minimal goal-biased RRT over the rigid
// body state space. It is the in-tree consumer that exercises
// distance, sampling and interpolation; heavier planners live outside
// this module.
package planner

import (
	"context"
	"errors"
	"math/rand"

	"github.com/maxtom/ompl/internal/rigid"
)

// ErrNoSolution indicates the iteration budget ran out before a state
// within tolerance of the goal was reached.
var ErrNoSolution = errors.New("planner: no solution within iteration budget")

// Sampler produces candidate configurations for tree growth.
type Sampler interface {
	Sample(out *rigid.State)
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func(out *rigid.State)

func (f SamplerFunc) Sample(out *rigid.State) { f(out) }

// Options tune the search.
type Options struct {
	// MaxIterations bounds tree growth attempts.
	MaxIterations int

	// GoalBias is the probability of steering toward the goal instead
	// of a random sample.
	GoalBias float64

	// Step is the fraction of the distance to the sample covered per
	// extension, in (0, 1].
	Step float64

	// Tolerance is the space distance at which a state counts as
	// reaching the goal.
	Tolerance float64
}

// DefaultOptions returns a workable starting point for small scenes.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 5000,
		GoalBias:      0.05,
		Step:          0.2,
		Tolerance:     0.1,
	}
}

// Progress is a snapshot of the search, delivered to the OnProgress
// callback once per iteration.
type Progress struct {
	Iteration int
	Nodes     int
	Best      float64
}

// Path is an ordered sequence of states from start to goal. The
// states are owned by the path; release them through the space when
// done.
type Path struct {
	States []*rigid.State
	Cost   float64
}

// RRT grows a tree from the start state toward uniformly drawn
// samples, biased toward the goal.
type RRT struct {
	Space   *rigid.Space
	Sampler Sampler

	// Valid, when non-nil, vets every new state and records the
	// outcome in its ValidCollision flag. Invalid states are
	// discarded.
	Valid func(*rigid.State) bool

	// OnProgress, when non-nil, receives one snapshot per iteration.
	OnProgress func(Progress)

	Opts Options
	Rng  *rand.Rand
}

type node struct {
	state  *rigid.State
	parent int
}

// Solve searches for a path from start to within Opts.Tolerance of
// goal. The input states are copied; the caller keeps ownership of
// both. Cancellation of ctx aborts the search with ctx.Err().
func (p *RRT) Solve(ctx context.Context, start, goal *rigid.State) (*Path, error) {
	root := p.Space.Alloc()
	p.Space.Copy(root, start)
	tree := []node{{state: root, parent: -1}}

	best := p.Space.Distance(start, goal)
	if best <= p.Opts.Tolerance {
		return p.extract(tree, 0), nil
	}

	target := p.Space.Alloc()
	defer p.Space.Free(target)

	for iter := 0; iter < p.Opts.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			p.release(tree, -1)
			return nil, ctx.Err()
		default:
		}

		if p.Rng.Float64() < p.Opts.GoalBias {
			p.Space.Copy(target, goal)
		} else {
			p.Sampler.Sample(target)
		}

		near := p.nearest(tree, target)
		fresh := p.Space.Alloc()
		p.Space.Interpolate(tree[near].state, target, p.Opts.Step, fresh)

		if p.Valid != nil {
			ok := p.Valid(fresh)
			fresh.ValidCollision = ok
			if !ok {
				p.Space.Free(fresh)
				continue
			}
		}

		tree = append(tree, node{state: fresh, parent: near})

		d := p.Space.Distance(fresh, goal)
		if d < best {
			best = d
		}
		if p.OnProgress != nil {
			p.OnProgress(Progress{Iteration: iter + 1, Nodes: len(tree), Best: best})
		}
		if d <= p.Opts.Tolerance {
			return p.extract(tree, len(tree)-1), nil
		}
	}

	p.release(tree, -1)
	return nil, ErrNoSolution
}

func (p *RRT) nearest(tree []node, target *rigid.State) int {
	bestIdx, bestDist := 0, p.Space.Distance(tree[0].state, target)
	for i := 1; i < len(tree); i++ {
		if d := p.Space.Distance(tree[i].state, target); d < bestDist {
			bestIdx, bestDist = i, d
		}
	}
	return bestIdx
}

// extract walks parents from leaf to root, recycles every node off
// the solution branch and returns the path root-first.
func (p *RRT) extract(tree []node, leaf int) *Path {
	onPath := make([]bool, len(tree))
	var states []*rigid.State
	for i := leaf; i != -1; i = tree[i].parent {
		onPath[i] = true
		states = append(states, tree[i].state)
	}
	for i := range tree {
		if !onPath[i] {
			p.Space.Free(tree[i].state)
		}
	}

	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	cost := 0.0
	for i := 1; i < len(states); i++ {
		cost += p.Space.Distance(states[i-1], states[i])
	}
	return &Path{States: states, Cost: cost}
}

func (p *RRT) release(tree []node, except int) {
	for i := range tree {
		if i != except {
			p.Space.Free(tree[i].state)
		}
	}
}
