package space

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is an axis-aligned box in R3. The zero value is the
// degenerate box at the origin.
type Bounds struct {
	Low  r3.Vec
	High r3.Vec
}

// Unit returns the symmetric [-1, 1] box.
func Unit() Bounds {
	return Bounds{
		Low:  r3.Vec{X: -1, Y: -1, Z: -1},
		High: r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

// Check reports whether the bounds are well formed (low <= high on
// every axis).
func (b Bounds) Check() error {
	if b.Low.X > b.High.X || b.Low.Y > b.High.Y || b.Low.Z > b.High.Z {
		return ErrInvalidBounds
	}
	return nil
}

// Contains reports whether v lies inside the box, boundary included.
func (b Bounds) Contains(v r3.Vec) bool {
	return v.X >= b.Low.X && v.X <= b.High.X &&
		v.Y >= b.Low.Y && v.Y <= b.High.Y &&
		v.Z >= b.Low.Z && v.Z <= b.High.Z
}

// Sample draws a point uniformly from the box.
func (b Bounds) Sample(rng *rand.Rand) r3.Vec {
	return r3.Vec{
		X: b.Low.X + rng.Float64()*(b.High.X-b.Low.X),
		Y: b.Low.Y + rng.Float64()*(b.High.Y-b.Low.Y),
		Z: b.Low.Z + rng.Float64()*(b.High.Z-b.Low.Z),
	}
}

// Expand grows the box to include v and returns the result.
func (b Bounds) Expand(v r3.Vec) Bounds {
	if v.X < b.Low.X {
		b.Low.X = v.X
	}
	if v.Y < b.Low.Y {
		b.Low.Y = v.Y
	}
	if v.Z < b.Low.Z {
		b.Low.Z = v.Z
	}
	if v.X > b.High.X {
		b.High.X = v.X
	}
	if v.Y > b.High.Y {
		b.High.Y = v.Y
	}
	if v.Z > b.High.Z {
		b.High.Z = v.Z
	}
	return b
}
