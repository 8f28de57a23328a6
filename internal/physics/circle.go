package physics

import (
	"fmt"

	"github.com/tomz197/satbox/internal/vector"
)

// Circle is a disc. Its angle only matters for rendering.
type Circle struct {
	RigidShape

	radius float64
}

var _ Shape = (*Circle)(nil)

// NewCircle creates a circle centered at center and registers it in reg.
// invMass 0 makes the circle static.
func NewCircle(reg *Registry, center vector.Vector, radius, invMass float64) (*Circle, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	if !finite(radius, invMass, center.X(), center.Y()) || radius <= 0 || invMass < 0 {
		return nil, fmt.Errorf("%w: circle radius %g inverse mass %g", ErrDegenerateShape, radius, invMass)
	}

	c := &Circle{
		RigidShape: RigidShape{
			center:      center,
			boundRadius: radius,
			invMass:     invMass,
		},
		radius: radius,
	}
	if invMass != 0 {
		mass := 1 / invMass
		c.inertia = 1 / (mass * radius * radius / 2)
	}

	c.attach(reg, c)
	return c, nil
}

// Kind implements Shape.
func (c *Circle) Kind() Kind { return KindCircle }

// Radius returns the circle radius.
func (c *Circle) Radius() float64 { return c.radius }

// Move translates the circle by v.
func (c *Circle) Move(v vector.Vector) {
	c.center = c.center.Add(v)
}

// Rotate turns the circle by angle radians. The center does not move.
func (c *Circle) Rotate(angle float64) {
	c.angle += angle
}

// Render draws the outline and a spoke showing the current angle.
func (c *Circle) Render(s Surface) {
	s.StrokeCircle(c.center, c.radius)
	rim := c.center.Add(vector.New(c.radius, 0)).Rotate(c.center, c.angle)
	s.StrokeLine(c.center, rim)
}

// CollisionTest dispatches on the concrete type of other.
func (c *Circle) CollisionTest(other Shape, info *CollisionInfo) bool {
	switch o := other.(type) {
	case *Circle:
		return c.collideCircle(o, info)
	case Polygon:
		if !o.CollideCircle(c, info) {
			return false
		}
		info.ChangeDir()
		return true
	default:
		return false
	}
}

// collideCircle tests two discs. The normal points from c toward o.
func (c *Circle) collideCircle(o *Circle, info *CollisionInfo) bool {
	between := o.center.Sub(c.center)
	rSum := c.radius + o.radius
	dist := between.Length()
	if dist > rSum {
		return false
	}

	if dist != 0 {
		n := between.Scale(1 / dist)
		info.SetInfo(rSum-dist, n, o.center.Sub(n.Scale(o.radius)))
		return true
	}

	// Concentric: any direction separates them, pick up.
	up := vector.New(0, -1)
	if c.radius > o.radius {
		info.SetInfo(rSum, up, c.center.Add(vector.New(0, c.radius)))
	} else {
		info.SetInfo(rSum, up, o.center.Add(vector.New(0, o.radius)))
	}
	return true
}
