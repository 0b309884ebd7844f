// Package rigid implements the composite planning state space for a
// scene of N independently moving rigid bodies.
//
// Each body contributes four substates in a fixed order: position,
// linear velocity, angular velocity (bounded R3 each) and orientation
// (unit quaternion). The package builds on the generic compound layer:
//
//   - [Space]: the 4N-child compound space with body-indexed access
//   - [State]: one planning configuration plus its validity flag
//   - [Sampler], [ValidSampler]: uniform and validity-biased sampling
//
// Ground truth flows through [Space.ReadState] and [Space.WriteState]
// against the injected [env.Environment]; sampling and interpolation
// operate purely in memory.
//
// # Example
//
//	sp, _ := rigid.New(e, rigid.DefaultWeights())
//	sp.SetDefaultBounds()
//	s := sp.Alloc()
//	sp.ReadState(s)
//
// # Thread Safety
//
// The space holds no internal locks. Disjoint states may be operated
// on concurrently; WriteState is not safe against concurrent
// invocation because it mutates shared simulator state.
package rigid
