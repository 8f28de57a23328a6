// Package physics is the narrow-phase collision core: rigid shapes, the
// separating axis tests between them and the registry that owns them.
//
// Everything here is synchronous and not safe for concurrent use. Callers
// serialize collision queries, typically one pair at a time inside a step.
package physics

import (
	"errors"
	"math"

	"github.com/tomz197/satbox/internal/vector"
)

var (
	// ErrDegenerateShape is returned when a shape would have zero area or a
	// negative inverse mass.
	ErrDegenerateShape = errors.New("physics: degenerate shape")
	// ErrNoRegistry is returned when a shape is created without a registry.
	ErrNoRegistry = errors.New("physics: shape requires a registry")
)

// DistanceSquared returns the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b vector.Vector) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// CirclesTouch reports whether two circles overlap or touch.
func CirclesTouch(c1 vector.Vector, r1 float64, c2 vector.Vector, r2 float64) bool {
	sum := r1 + r2
	return DistanceSquared(c1, c2) <= sum*sum
}

// InverseMass converts a mass to the inverse mass shapes are built with.
// A mass of 0 yields 0, the infinite-mass sentinel for static bodies.
func InverseMass(mass float64) float64 {
	if mass == 0 {
		return 0
	}
	return 1 / mass
}

// finite reports whether every value is neither NaN nor infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
