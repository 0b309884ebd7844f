// Package space provides the generic state-space layer used for
// kinodynamic planning over rigid bodies.
//
// The package defines a closed set of substate kinds and the spaces
// that operate on them:
//
//   - [Vec3]: a point in a bounded axis-aligned region of R3
//   - [SO3]: a unit quaternion on the rotation group
//   - [Vector3Space]: bounded Euclidean subspace (distance, lerp)
//   - [SO3Space]: rotation subspace (arc distance, shortest-arc slerp)
//   - [Compound]: ordered, weighted composition of subspaces
//   - [Sampler]: uniform sampling over a compound space
//
// # Example
//
//	c := space.NewCompound()
//	c.AddSubspace(space.NewVector3Space(space.Unit()), 1.0)
//	c.AddSubspace(space.NewSO3Space(), 1.0)
//	s := c.Alloc()
//
// # Thread Safety
//
// Spaces are read-only after construction and safe for concurrent
// use. States are plain owned values; concurrent use is safe only on
// disjoint instances.
package space
