package physics

import (
	"github.com/tomz197/satbox/internal/vector"
)

// Kind identifies a concrete shape type.
type Kind int

const (
	KindRectangle Kind = iota
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Surface is anything a shape can draw its outline on.
// Implementations must not retain the point slices passed to them.
type Surface interface {
	StrokePolygon(points []vector.Vector)
	StrokeCircle(center vector.Vector, radius float64)
	StrokeLine(a, b vector.Vector)
}

// Shape is the capability set shared by every rigid shape.
type Shape interface {
	Kind() Kind
	Handle() Handle
	Center() vector.Vector
	Angle() float64
	BoundRadius() float64
	InvMass() float64
	Inertia() float64

	// Move translates the shape by v.
	Move(v vector.Vector)
	// Rotate turns the shape by angle radians about its center.
	Rotate(angle float64)
	// Render draws the shape. It never changes geometric state.
	Render(s Surface)
	// Update is the per-frame hook for shape-specific behavior.
	Update(s Surface)

	// BoundTest is the coarse bounding-circle pre-check.
	BoundTest(other Shape) bool
	// CollisionTest reports whether the shape overlaps other. On true, info
	// holds the contact with its normal pointing from the receiver toward
	// other. On false, info is left untouched.
	CollisionTest(other Shape, info *CollisionInfo) bool
}

// RigidShape holds the pose and mass state common to all shapes.
// Concrete shapes embed it and override the hooks they need.
type RigidShape struct {
	center      vector.Vector
	angle       float64
	boundRadius float64
	invMass     float64
	inertia     float64

	registry *Registry // not owned
	handle   Handle
}

// attach registers self into reg. Called last by concrete constructors so
// that the registry only ever sees fully built shapes.
func (r *RigidShape) attach(reg *Registry, self Shape) {
	r.registry = reg
	r.handle = reg.Register(self)
}

// Center returns the centroid position.
func (r *RigidShape) Center() vector.Vector { return r.center }

// Angle returns the accumulated rotation in radians.
func (r *RigidShape) Angle() float64 { return r.angle }

// BoundRadius returns the radius of a circle enclosing the shape.
func (r *RigidShape) BoundRadius() float64 { return r.boundRadius }

// InvMass returns the inverse mass; 0 means static.
func (r *RigidShape) InvMass() float64 { return r.invMass }

// Inertia returns the inverse rotational inertia; 0 means static.
func (r *RigidShape) Inertia() float64 { return r.inertia }

// Handle returns the registry handle the shape was registered under.
func (r *RigidShape) Handle() Handle { return r.handle }

// Registry returns the registry the shape belongs to.
func (r *RigidShape) Registry() *Registry { return r.registry }

// Move is a no-op on the base shape.
func (r *RigidShape) Move(vector.Vector) {}

// Rotate is a no-op on the base shape.
func (r *RigidShape) Rotate(float64) {}

// Render is a no-op on the base shape.
func (r *RigidShape) Render(Surface) {}

// Update is a no-op on the base shape.
func (r *RigidShape) Update(Surface) {}

// BoundTest reports whether the bounding circles of the two shapes touch.
func (r *RigidShape) BoundTest(other Shape) bool {
	return CirclesTouch(r.center, r.boundRadius, other.Center(), other.BoundRadius())
}
