// Package vector provides the 2D value type used by the physics core.
package vector

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrZeroVector is returned when normalizing a vector of zero length.
var ErrZeroVector = errors.New("vector: cannot normalize zero-length vector")

// Vector is a 2D vector with value semantics.
type Vector mgl64.Vec2

// Zero is the zero vector.
var Zero = Vector{}

// New creates a vector from its components.
func New(x, y float64) Vector {
	return Vector{x, y}
}

// X returns the x component.
func (v Vector) X() float64 { return v[0] }

// Y returns the y component.
func (v Vector) Y() float64 { return v[1] }

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector(mgl64.Vec2(v).Add(mgl64.Vec2(o)))
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector(mgl64.Vec2(v).Sub(mgl64.Vec2(o)))
}

// Scale returns v * k.
func (v Vector) Scale(k float64) Vector {
	return Vector(mgl64.Vec2(v).Mul(k))
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return mgl64.Vec2(v).Dot(mgl64.Vec2(o))
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return mgl64.Vec2(v).Len()
}

// Distance returns the distance between the points v and o.
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Length()
}

// Normalize returns the unit vector pointing the same way as v.
func (v Vector) Normalize() (Vector, error) {
	l := v.Length()
	if l == 0 {
		return Zero, ErrZeroVector
	}
	return v.Scale(1 / l), nil
}

// Unit is Normalize for callers that have already excluded the zero vector.
// It panics with ErrZeroVector otherwise.
func (v Vector) Unit() Vector {
	n, err := v.Normalize()
	if err != nil {
		panic(err)
	}
	return n
}

// Rotate rotates v by angle radians about pivot.
func (v Vector) Rotate(pivot Vector, angle float64) Vector {
	rel := mgl64.Vec2(v.Sub(pivot))
	return Vector(mgl64.Rotate2D(angle).Mul2x1(rel)).Add(pivot)
}

// ApproxEqual reports whether v and o are equal within eps per component.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	return math.Abs(v[0]-o[0]) <= eps && math.Abs(v[1]-o[1]) <= eps
}
